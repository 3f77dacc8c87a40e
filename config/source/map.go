// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"strconv"
	"strings"

	"github.com/z5labs/typedconfig/config"
	"github.com/z5labs/typedconfig/config/key"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Map is a nested map[string]any which implements config.Source.
//
// Each path segment selects a key of a nested map, or an index of a
// nested []any. Scalar leaves are converted to their string form. Nested
// maps are never leaves.
//
// Lists of scalars are resolved element by element by config.Slice and
// friends. Looked up as a single value, a list is rendered as a YAML flow
// sequence of quoted strings, which config.YAMLFlow reverses exactly.
type Map map[string]any

var _ config.ListSource = Map(nil)

// Lookup implements the config.Source interface.
func (m Map) Lookup(path key.Path) (string, bool) {
	node, ok := m.node(path)
	if !ok {
		return "", false
	}
	return leaf(node)
}

// LookupList implements the config.ListSource interface.
func (m Map) LookupList(path key.Path) (string, []string, bool) {
	node, ok := m.node(path)
	if !ok {
		return "", nil, false
	}
	return listLeaf(node)
}

// RenderPath implements the config.Source interface.
func (m Map) RenderPath(path key.Path) string {
	return path.String()
}

func (m Map) node(path key.Path) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	var node any = map[string]any(m)
	for _, seg := range path {
		next, ok := child(node, seg)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

func child(node any, seg string) (any, bool) {
	switch x := node.(type) {
	case map[string]any:
		v, ok := x[seg]
		return v, ok
	case Map:
		v, ok := x[seg]
		return v, ok
	case map[any]any:
		v, ok := x[seg]
		return v, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(x) {
			return nil, false
		}
		return x[i], true
	default:
		return nil, false
	}
}

func leaf(node any) (string, bool) {
	switch x := node.(type) {
	case nil:
		return "", false
	case map[string]any, Map, map[any]any:
		return "", false
	case []any, []string:
		elems, ok := elements(x)
		if !ok {
			return "", false
		}
		return flowSequence(elems)
	default:
		s, err := cast.ToStringE(x)
		if err != nil {
			return "", false
		}
		return s, true
	}
}

func listLeaf(node any) (string, []string, bool) {
	if elems, ok := elements(node); ok {
		return "", elems, true
	}
	raw, ok := leaf(node)
	return raw, nil, ok
}

// elements converts a list of scalars. The result is never nil for a
// list, even an empty one.
func elements(node any) ([]string, bool) {
	switch x := node.(type) {
	case []string:
		return append([]string{}, x...), true
	case []any:
		elems := make([]string, len(x))
		for i, e := range x {
			switch e.(type) {
			case map[string]any, Map, map[any]any, []any, []string:
				return nil, false
			}
			s, err := cast.ToStringE(e)
			if err != nil {
				return nil, false
			}
			elems[i] = s
		}
		return elems, true
	default:
		return nil, false
	}
}

func flowSequence(elems []string) (string, bool) {
	seq := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
	}
	for _, e := range elems {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Style: yaml.DoubleQuotedStyle,
			Value: e,
		})
	}

	b, err := yaml.Marshal(seq)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}
