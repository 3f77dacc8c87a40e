// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import "github.com/z5labs/typedconfig/config/key"

// Resolver produces a validated value of type T for a path in a Source,
// falling back to def when the Source has no value.
type Resolver[T any] interface {
	Resolve(src Source, path key.Path, def Value[T]) Validated[T]
}

// ResolverFunc is a functional implementation of the Resolver interface.
type ResolverFunc[T any] func(src Source, path key.Path, def Value[T]) Validated[T]

// Resolve implements the Resolver interface.
func (f ResolverFunc[T]) Resolve(src Source, path key.Path, def Value[T]) Validated[T] {
	return f(src, path, def)
}

// Scalar returns a Resolver which parses the raw value at a path with p.
//
// A present value which fails to parse is always a failure, even if a
// default is available. An absent value resolves to the default, or to
// a NotFound failure if there is none.
func Scalar[T any](p Parser[T]) Resolver[T] {
	return ResolverFunc[T](func(src Source, path key.Path, def Value[T]) Validated[T] {
		raw, ok := src.Lookup(path)
		if !ok {
			return missing(src, path, def)
		}

		v, err := p(raw)
		if err != nil {
			return Invalid[T](ParseFailureAt(src.RenderPath(path), err))
		}
		return Valid(v)
	})
}

// Resolve is shorthand for r.Resolve(src, path, def).
func Resolve[T any](src Source, path key.Path, r Resolver[T], def Value[T]) Validated[T] {
	return r.Resolve(src, path, def)
}

func missing[T any](src Source, path key.Path, def Value[T]) Validated[T] {
	if d, ok := def.Value(); ok {
		return Valid(d)
	}
	return Invalid[T](NotFoundAt(src.RenderPath(path)))
}
