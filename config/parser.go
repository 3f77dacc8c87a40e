// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"

	"github.com/z5labs/typedconfig/internal/try"
)

// Parser converts a raw config string into a value of type T. A Parser
// must never panic on malformed input.
type Parser[T any] func(raw string) (T, error)

// Parse implements the Parser contract.
func (p Parser[T]) Parse(raw string) (T, error) {
	return p(raw)
}

// ParseError occurs when a raw config string is not a valid literal
// of the requested type.
type ParseError struct {
	// Value is the raw string which failed to parse.
	Value string

	// Kind describes what was expected, e.g. "integer" or "duration".
	Kind string

	// Type is the name of the target type.
	Type string

	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Could not parse value '%s' as a valid %s for type '%s'", e.Value, e.Kind, e.Type)
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// String returns the raw string unchanged.
func String(raw string) (string, error) {
	return raw, nil
}

// Bool accepts exactly "true" and "false". Case matters.
func Bool(raw string) (bool, error) {
	switch raw {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &ParseError{Value: raw, Kind: "boolean", Type: "bool"}
}

func parseSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bits int, typeName string) Parser[T] {
	return func(raw string) (T, error) {
		n, err := strconv.ParseInt(raw, 10, bits)
		if err != nil {
			return 0, &ParseError{Value: raw, Kind: "integer", Type: typeName, Cause: err}
		}
		return T(n), nil
	}
}

func parseUnsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](bits int, typeName string) Parser[T] {
	return func(raw string) (T, error) {
		n, err := strconv.ParseUint(raw, 10, bits)
		if err != nil {
			return 0, &ParseError{Value: raw, Kind: "unsigned integer", Type: typeName, Cause: err}
		}
		return T(n), nil
	}
}

func parseFloat[T ~float32 | ~float64](bits int, typeName string) Parser[T] {
	return func(raw string) (T, error) {
		f, err := strconv.ParseFloat(raw, bits)
		if err != nil {
			return 0, &ParseError{Value: raw, Kind: "floating point number", Type: typeName, Cause: err}
		}
		return T(f), nil
	}
}

// Numeric parsers accept base 10 literals of exactly their width. Out of
// range values fail rather than wrap.
var (
	Int     = parseSigned[int](strconv.IntSize, "int")
	Int8    = parseSigned[int8](8, "int8")
	Int16   = parseSigned[int16](16, "int16")
	Int32   = parseSigned[int32](32, "int32")
	Int64   = parseSigned[int64](64, "int64")
	Uint    = parseUnsigned[uint](strconv.IntSize, "uint")
	Uint8   = parseUnsigned[uint8](8, "uint8")
	Uint16  = parseUnsigned[uint16](16, "uint16")
	Uint32  = parseUnsigned[uint32](32, "uint32")
	Uint64  = parseUnsigned[uint64](64, "uint64")
	Float32 = parseFloat[float32](32, "float32")
	Float64 = parseFloat[float64](64, "float64")
)

// ErrIncompleteURL is the cause of a URL parse failure when the raw
// string parses but names neither a host nor an opaque part.
var ErrIncompleteURL = errors.New("url must have a scheme and a host or opaque part")

// URL parses an absolute URL. A scheme and a host (or an opaque part,
// e.g. "mailto:ops@example.com") are required.
func URL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &ParseError{Value: raw, Kind: "URL", Type: "url.URL", Cause: err}
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return nil, &ParseError{Value: raw, Kind: "URL", Type: "url.URL", Cause: ErrIncompleteURL}
	}
	return u, nil
}

// Text returns a Parser for any type whose pointer implements
// encoding.TextUnmarshaler, e.g. net/netip.Addr or log/slog.Level. A
// panic inside UnmarshalText is reported as a parse error.
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() Parser[T] {
	typeName := reflect.TypeFor[T]().String()
	return func(raw string) (T, error) {
		var v T
		err := unmarshalText(PT(&v), raw)
		if err != nil {
			var zero T
			return zero, &ParseError{Value: raw, Kind: "text value", Type: typeName, Cause: err}
		}
		return v, nil
	}
}

func unmarshalText(u encoding.TextUnmarshaler, raw string) (err error) {
	defer try.Recover(&err)
	return u.UnmarshalText([]byte(raw))
}

// Enum returns a Parser which only accepts one of the given values, compared
// case sensitively.
func Enum(typeName string, allowed ...string) Parser[string] {
	return func(raw string) (string, error) {
		if slices.Contains(allowed, raw) {
			return raw, nil
		}
		return "", &ParseError{Value: raw, Kind: "enum value", Type: typeName}
	}
}

// MapParser applies f to the output of p. An error from f is reported
// as a parse failure of the raw string against typeName.
func MapParser[A, B any](p Parser[A], typeName string, f func(A) (B, error)) Parser[B] {
	return func(raw string) (B, error) {
		var zero B
		a, err := p(raw)
		if err != nil {
			return zero, err
		}
		b, err := f(a)
		if err != nil {
			return zero, &ParseError{Value: raw, Kind: "value", Type: typeName, Cause: err}
		}
		return b, nil
	}
}
