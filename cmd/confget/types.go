// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"time"

	"github.com/z5labs/typedconfig/config"
	"github.com/z5labs/typedconfig/config/key"
)

// UnknownTypeError occurs when --type names a type confget cannot resolve.
type UnknownTypeError struct {
	Type string
}

// Error implements the error interface.
func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q, must be one of %v", e.Type, typeNames())
}

// InvalidDefaultError occurs when --default cannot be parsed as --type.
type InvalidDefaultError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidDefaultError) Error() string {
	return fmt.Sprintf("invalid default: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDefaultError) Unwrap() error {
	return e.Cause
}

type request struct {
	def      *string
	list     bool
	optional bool
}

type resolveFunc func(src config.Source, path key.Path, req request) ([]string, error)

var resolvers = map[string]resolveFunc{
	"string":          scalar[string](),
	"int":             scalar[int](),
	"int8":            scalar[int8](),
	"int16":           scalar[int16](),
	"int32":           scalar[int32](),
	"int64":           scalar[int64](),
	"uint":            scalar[uint](),
	"uint8":           scalar[uint8](),
	"uint16":          scalar[uint16](),
	"uint32":          scalar[uint32](),
	"uint64":          scalar[uint64](),
	"float32":         scalar[float32](),
	"float64":         scalar[float64](),
	"bool":            scalar[bool](),
	"url":             scalar[*url.URL](),
	"duration":        scalar[config.Duration](),
	"finite-duration": scalar[time.Duration](),
}

func typeNames() []string {
	return slices.Sorted(maps.Keys(resolvers))
}

// scalar resolves values with the Parser registered for T.
func scalar[T any]() resolveFunc {
	return func(src config.Source, path key.Path, req request) ([]string, error) {
		p, ok := config.ParserFor[T]()
		if !ok {
			return nil, config.UnregisteredTypeError{Type: fmt.Sprintf("%T", *new(T))}
		}

		elem := config.Scalar(p)
		if req.list {
			return resolve(src, path, req, config.Slice(elem), func(xs []T) []string {
				lines := make([]string, len(xs))
				for i, x := range xs {
					lines[i] = fmt.Sprint(x)
				}
				return lines
			})
		}
		return resolve(src, path, req, elem, func(x T) []string {
			return []string{fmt.Sprint(x)}
		})
	}
}

// defaultSource holds the raw --default value at every path.
type defaultSource string

func (s defaultSource) Lookup(path key.Path) (string, bool) {
	return string(s), true
}

func (s defaultSource) RenderPath(path key.Path) string {
	return "--default"
}

func resolve[T any](src config.Source, path key.Path, req request, r config.Resolver[T], format func(T) []string) ([]string, error) {
	def := config.None[T]()
	if req.def != nil {
		v, err := r.Resolve(defaultSource(*req.def), path, config.None[T]()).Unwrap()
		if err != nil {
			return nil, InvalidDefaultError{Cause: err}
		}
		def = config.ValueOf(v)
	}

	if !req.optional {
		v, err := config.Resolve(src, path, r, def).Unwrap()
		if err != nil {
			return nil, err
		}
		return format(v), nil
	}

	optDef := config.None[config.Value[T]]()
	if def.IsSet() {
		optDef = config.ValueOf(def)
	}
	ov, err := config.Resolve(src, path, config.Optional(r), optDef).Unwrap()
	if err != nil {
		return nil, err
	}
	v, ok := ov.Value()
	if !ok {
		return nil, nil
	}
	return format(v), nil
}
