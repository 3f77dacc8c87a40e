// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"net/url"
	"reflect"
	"sync"
	"time"

	"github.com/z5labs/typedconfig/config/key"
)

// parsers maps a reflect.Type to a Parser of that type. Entries are
// only ever replaced, never mutated.
var parsers = struct {
	mu sync.RWMutex
	m  map[reflect.Type]any
}{
	m: make(map[reflect.Type]any),
}

func init() {
	RegisterParser[string](String)
	RegisterParser[bool](Bool)
	RegisterParser(Int)
	RegisterParser(Int8)
	RegisterParser(Int16)
	RegisterParser(Int32)
	RegisterParser(Int64)
	RegisterParser(Uint)
	RegisterParser(Uint8)
	RegisterParser(Uint16)
	RegisterParser(Uint32)
	RegisterParser(Uint64)
	RegisterParser(Float32)
	RegisterParser(Float64)
	RegisterParser[*url.URL](URL)
	RegisterParser[Duration](ParseDuration)
	RegisterParser[time.Duration](FiniteDuration)
}

// RegisterParser makes p the Parser used by Get and ParserFor for values
// of type T. Registering a type again replaces its Parser. It is safe
// for concurrent use.
func RegisterParser[T any](p Parser[T]) {
	parsers.mu.Lock()
	defer parsers.mu.Unlock()
	parsers.m[reflect.TypeFor[T]()] = p
}

// ParserFor returns the Parser registered for T.
func ParserFor[T any]() (Parser[T], bool) {
	parsers.mu.RLock()
	defer parsers.mu.RUnlock()

	p, ok := parsers.m[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return p.(Parser[T]), true
}

// UnregisteredTypeError occurs when Get is used with a type that has no
// registered Parser.
type UnregisteredTypeError struct {
	Type string
}

// Error implements the error interface.
func (e UnregisteredTypeError) Error() string {
	return fmt.Sprintf("No parser registered for type '%s'", e.Type)
}

// Get resolves the value at path using the Parser registered for T.
//
//	port := config.Get[uint16](src, key.Parse("server.port"), config.ValueOf[uint16](8080))
//	timeout := config.Get[time.Duration](src, key.Parse("server.timeout"), config.None[time.Duration]())
func Get[T any](src Source, path key.Path, def Value[T]) Validated[T] {
	p, ok := ParserFor[T]()
	if !ok {
		return Invalid[T](ParseFailureAt(src.RenderPath(path), UnregisteredTypeError{Type: reflect.TypeFor[T]().String()}))
	}
	return Scalar(p).Resolve(src, path, def)
}
