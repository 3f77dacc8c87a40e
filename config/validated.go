// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

// Validated is the outcome of resolving a config value. It holds either
// a value or a non-empty, ordered list of failures, never both.
//
// The zero Validated is valid and holds the zero value of T.
type Validated[T any] struct {
	v        T
	failures Failures
}

// Valid returns a successful Validated holding v.
func Valid[T any](v T) Validated[T] {
	return Validated[T]{v: v}
}

// Invalid returns a failed Validated. At least one Failure is always required.
func Invalid[T any](first Failure, rest ...Failure) Validated[T] {
	fs := make(Failures, 0, 1+len(rest))
	fs = append(fs, first)
	fs = append(fs, rest...)
	return Validated[T]{failures: fs}
}

// invalidFrom must only be called with a non-empty list.
func invalidFrom[T any](fs Failures) Validated[T] {
	return Invalid[T](fs[0], fs[1:]...)
}

// IsValid reports whether a value was resolved.
func (v Validated[T]) IsValid() bool {
	return len(v.failures) == 0
}

// Value returns the resolved value and true, or the zero value of T
// and false if resolution failed.
func (v Validated[T]) Value() (T, bool) {
	if !v.IsValid() {
		var zero T
		return zero, false
	}
	return v.v, true
}

// Failures returns a copy of the failures, in discovery order. It is
// empty for a valid result.
func (v Validated[T]) Failures() Failures {
	if len(v.failures) == 0 {
		return nil
	}
	fs := make(Failures, len(v.failures))
	copy(fs, v.failures)
	return fs
}

// Unwrap converts the Validated into Go's conventional (value, error)
// pair. The error, if non-nil, is always a Failures.
func (v Validated[T]) Unwrap() (T, error) {
	if !v.IsValid() {
		var zero T
		return zero, v.Failures()
	}
	return v.v, nil
}

// OrElse returns the resolved value, or def if resolution failed.
func (v Validated[T]) OrElse(def T) T {
	if !v.IsValid() {
		return def
	}
	return v.v
}

// MapValid transforms a valid value with f. Failures pass through untouched.
func MapValid[A, B any](v Validated[A], f func(A) B) Validated[B] {
	if !v.IsValid() {
		return Validated[B]{failures: v.failures}
	}
	return Valid(f(v.v))
}
