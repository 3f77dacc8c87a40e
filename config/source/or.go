// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"github.com/z5labs/typedconfig/config"
	"github.com/z5labs/typedconfig/config/key"
)

type layered []config.Source

// Or layers sources. A lookup returns the value from the first source
// which has one. Paths are rendered by the first source.
func Or(srcs ...config.Source) config.Source {
	ls := make(layered, 0, len(srcs))
	for _, src := range srcs {
		if src != nil {
			ls = append(ls, src)
		}
	}
	return ls
}

func (ls layered) Lookup(path key.Path) (string, bool) {
	for _, src := range ls {
		v, ok := src.Lookup(path)
		if ok {
			return v, true
		}
	}
	return "", false
}

// LookupList keeps the precedence of Lookup: a scalar value in an earlier
// source hides a list in a later one.
func (ls layered) LookupList(path key.Path) (string, []string, bool) {
	for _, src := range ls {
		if lsrc, ok := src.(config.ListSource); ok {
			raw, elems, found := lsrc.LookupList(path)
			if found {
				return raw, elems, true
			}
			continue
		}

		raw, found := src.Lookup(path)
		if found {
			return raw, nil, true
		}
	}
	return "", nil, false
}

func (ls layered) RenderPath(path key.Path) string {
	if len(ls) == 0 {
		return path.String()
	}
	return ls[0].RenderPath(path)
}
