// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config resolves typed, validated configuration values from
// pluggable sources.
//
// A [Source] supplies raw strings by [key.Path]. A [Parser] turns a raw
// string into a value of some type. A [Resolver] combines the two with an
// optional default and produces a [Validated], which holds either the
// value or every [Failure] encountered.
//
// # Basic Usage
//
// Resolve a port with a default:
//
//	port := config.Resolve(src, key.Parse("server.port"), config.Scalar(config.Uint16), config.ValueOf[uint16](8080))
//
// Or let the type pick the Parser:
//
//	port := config.Get[uint16](src, key.Parse("server.port"), config.ValueOf[uint16](8080))
//
// # Failures
//
// Resolution never stops at the first problem. A value which is present
// but malformed is a [ParseFailure] and is never replaced by a default. A
// value which is absent with no default is a [NotFound] failure:
//
//	Could not find configuration at 'server.port' and no default available
//
// Independent results are combined with [Combine2], [Sequence], [Join] or a
// [Builder], all of which keep every failure in discovery order.
//
// # Optional values and collections
//
// [Optional] wraps any Resolver so that absence resolves to an unset
// [Value] instead of failing. [Slice], [Seq] and [Set] split a single raw
// value into elements and resolve each element with another Resolver:
//
//	hosts := config.Resolve(src, key.Parse("hosts"), config.Slice(config.Scalar[*url.URL](config.URL)), config.None[[]*url.URL]())
//	debug := config.Resolve(src, key.Parse("debug"), config.Optional(config.Scalar[bool](config.Bool)), config.None[config.Value[bool]]())
package config
