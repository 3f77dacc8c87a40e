// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Splitter breaks a single raw list value into its raw elements, in order.
type Splitter func(raw string) ([]string, error)

// CommaSeparated splits on commas and trims surrounding whitespace from
// every element. A blank value is an empty list.
func CommaSeparated(raw string) ([]string, error) {
	return Separator(",")(raw)
}

// Separator returns a Splitter which splits on sep and trims surrounding
// whitespace from every element. A blank value is an empty list.
func Separator(sep string) Splitter {
	return func(raw string) ([]string, error) {
		if strings.TrimSpace(raw) == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, sep)
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts, nil
	}
}

// InvalidListError occurs when a raw list value cannot be split.
type InvalidListError struct {
	Value string
	Cause error
}

// Error implements the error interface.
func (e InvalidListError) Error() string {
	return fmt.Sprintf("invalid yaml sequence %q: %s", e.Value, e.Cause)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e InvalidListError) Unwrap() error {
	return e.Cause
}

// YAMLFlow splits a YAML sequence, either flow style ("[a, b, c]") or
// block style. A blank value is an empty list and a YAML scalar is a
// single element list.
func YAMLFlow(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}

	var node yaml.Node
	err := yaml.Unmarshal([]byte(raw), &node)
	if err != nil {
		return nil, InvalidListError{Value: raw, Cause: err}
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = *node.Content[0]
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return []string{node.Value}, nil
	case yaml.SequenceNode:
	default:
		return nil, InvalidListError{Value: raw, Cause: fmt.Errorf("expected a sequence but found yaml node kind %d", node.Kind)}
	}

	elems := make([]string, 0, len(node.Content))
	for _, n := range node.Content {
		if n.Kind != yaml.ScalarNode {
			return nil, InvalidListError{Value: raw, Cause: fmt.Errorf("sequence element at line %d is not a scalar", n.Line)}
		}
		elems = append(elems, n.Value)
	}
	return elems, nil
}
