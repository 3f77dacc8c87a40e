// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

// Value represents a value which may or may not be set. It
// distinguishes "not set" from "set to the zero value".
type Value[T any] struct {
	set bool
	v   T
}

// ValueOf returns a Value which is set to v.
func ValueOf[T any](v T) Value[T] {
	return Value[T]{
		set: true,
		v:   v,
	}
}

// None returns a Value which is not set.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Value returns the underlying value and whether it was set.
func (v Value[T]) Value() (T, bool) {
	return v.v, v.set
}

// IsSet reports whether the value was set.
func (v Value[T]) IsSet() bool {
	return v.set
}

// OrElse returns the underlying value if set, otherwise def.
func (v Value[T]) OrElse(def T) T {
	if v.set {
		return v.v
	}
	return def
}
