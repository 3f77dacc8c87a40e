// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strconv"

	"github.com/z5labs/typedconfig/config/key"
)

type listOptions struct {
	split Splitter
}

// ListOption configures how a collection Resolver reads its raw value.
type ListOption func(*listOptions)

// WithSplitter overrides the default CommaSeparated Splitter.
func WithSplitter(s Splitter) ListOption {
	return func(lo *listOptions) {
		lo.split = s
	}
}

// Slice returns a Resolver for an indexed sequence whose elements are
// resolved with elem. Order and duplicates are preserved.
func Slice[T any](elem Resolver[T], opts ...ListOption) Resolver[[]T] {
	return collection(elem, opts, func(vs []T) []T {
		return vs
	})
}

// Seq returns a Resolver for an ordered, iterable sequence whose elements
// are resolved with elem. Order and duplicates are preserved.
func Seq[T any](elem Resolver[T], opts ...ListOption) Resolver[iter.Seq[T]] {
	return collection(elem, opts, func(vs []T) iter.Seq[T] {
		return slices.Values(vs)
	})
}

// Set returns a Resolver for a set whose elements are resolved with elem.
// Elements which are equal by == are collapsed into one. For pointer
// types, like the *url.URL returned by URL, that is pointer identity, so
// use SetBy to collapse them by value.
func Set[T comparable](elem Resolver[T], opts ...ListOption) Resolver[map[T]struct{}] {
	return collection(elem, opts, func(vs []T) map[T]struct{} {
		set := make(map[T]struct{}, len(vs))
		for _, v := range vs {
			set[v] = struct{}{}
		}
		return set
	})
}

// SetBy returns a Resolver for a set whose elements are resolved with
// elem and collapsed when their keys are equal. The first element with a
// given key is kept.
//
//	urls := config.SetBy(config.Scalar[*url.URL](config.URL), (*url.URL).String)
func SetBy[T any, K comparable](elem Resolver[T], keyOf func(T) K, opts ...ListOption) Resolver[map[K]T] {
	return collection(elem, opts, func(vs []T) map[K]T {
		set := make(map[K]T, len(vs))
		for _, v := range vs {
			k := keyOf(v)
			if _, exists := set[k]; exists {
				continue
			}
			set[k] = v
		}
		return set
	})
}

func collection[T, C any](elem Resolver[T], opts []ListOption, build func([]T) C) Resolver[C] {
	lo := &listOptions{
		split: CommaSeparated,
	}
	for _, opt := range opts {
		opt(lo)
	}

	return ResolverFunc[C](func(src Source, path key.Path, def Value[C]) Validated[C] {
		raw, parts, ok := lookupList(src, path)
		if !ok {
			return missing(src, path, def)
		}

		rendered := src.RenderPath(path)
		if parts == nil {
			var err error
			parts, err = lo.split(raw)
			if err != nil {
				return Invalid[C](ParseFailureAt(rendered, asParseError[C](raw, err)))
			}
		}

		elems := make([]Validated[T], len(parts))
		for i, part := range parts {
			es := elementSource{
				parent:   src,
				path:     path.Child(strconv.Itoa(i)),
				rendered: fmt.Sprintf("%s[%d]", rendered, i),
				raw:      part,
			}
			elems[i] = elem.Resolve(es, es.path, None[T]())
		}
		return MapValid(Sequence(elems), build)
	})
}

func asParseError[C any](raw string, err error) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		return err
	}
	return &ParseError{
		Value: raw,
		Kind:  "list",
		Type:  reflect.TypeFor[C]().String(),
		Cause: err,
	}
}
