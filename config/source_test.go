// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "github.com/z5labs/typedconfig/config/key"

// staticSource is a flat Source keyed by the dotted form of a path.
type staticSource map[string]string

func (s staticSource) Lookup(path key.Path) (string, bool) {
	v, ok := s[path.String()]
	return v, ok
}

func (s staticSource) RenderPath(path key.Path) string {
	return path.String()
}

// countingSource records how many lookups were made.
type countingSource struct {
	Source
	lookups int
}

func (s *countingSource) Lookup(path key.Path) (string, bool) {
	s.lookups++
	return s.Source.Lookup(path)
}

// listSource stores lists natively, keyed by the dotted form of a path.
type listSource struct {
	staticSource
	lists map[string][]string
}

func (s listSource) LookupList(path key.Path) (string, []string, bool) {
	if elems, ok := s.lists[path.String()]; ok {
		return "", elems, true
	}
	raw, ok := s.Lookup(path)
	return raw, nil, ok
}

var keyTest = key.Parse("test")

func pathOf(s string) key.Path {
	return key.Parse(s)
}
