// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "github.com/z5labs/typedconfig/config/key"

// Source supplies raw config strings by path.
//
// Lookup must be total: a missing value is reported by returning false,
// never by panicking. A Source may cache or perform I/O internally, but
// should do so when it is constructed rather than on every Lookup.
//
// RenderPath returns the form of a path used in failure messages, e.g.
// "server.port" or "APP_SERVER_PORT". It must be deterministic.
type Source interface {
	Lookup(path key.Path) (string, bool)
	RenderPath(path key.Path) string
}

// ListSource is implemented by sources which store lists natively, such
// as decoded YAML or JSON documents. Collection resolvers use the stored
// elements as they are instead of splitting a raw string, so elements
// may contain separators or surrounding spaces.
//
// LookupList reports the stored elements with a non-nil elems when the
// value at path is a list. Otherwise it behaves like Lookup and reports
// the raw string with a nil elems.
type ListSource interface {
	Source
	LookupList(path key.Path) (raw string, elems []string, found bool)
}

func lookupList(src Source, path key.Path) (string, []string, bool) {
	if ls, ok := src.(ListSource); ok {
		return ls.LookupList(path)
	}
	raw, found := src.Lookup(path)
	return raw, nil, found
}

// elementSource exposes one element of a list value at its own path
// while delegating everything else to the parent Source.
type elementSource struct {
	parent   Source
	path     key.Path
	rendered string
	raw      string
}

func (s elementSource) Lookup(path key.Path) (string, bool) {
	if path.Equal(s.path) {
		return s.raw, true
	}
	return s.parent.Lookup(path)
}

func (s elementSource) RenderPath(path key.Path) string {
	if path.Equal(s.path) {
		return s.rendered
	}
	return s.parent.RenderPath(path)
}
