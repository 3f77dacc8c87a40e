// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"
)

// FailureKind classifies why a config value could not be resolved.
type FailureKind int

const (
	// NotFound means no raw value existed and no default was supplied.
	NotFound FailureKind = iota + 1

	// ParseFailure means a raw value existed but did not conform to the
	// target type's grammar.
	ParseFailure
)

// String implements the fmt.Stringer interface.
func (k FailureKind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case ParseFailure:
		return "parse failure"
	default:
		return "unknown"
	}
}

// Failure describes a single config value which could not be resolved.
// Message is a stable, human readable string. Cause, when set, is the
// parser level error which produced the failure.
type Failure struct {
	Kind    FailureKind
	Path    string
	Message string
	Cause   error
}

// NotFoundAt returns the Failure reported when no value exists at the
// rendered path and no default is available.
func NotFoundAt(path string) Failure {
	return Failure{
		Kind:    NotFound,
		Path:    path,
		Message: fmt.Sprintf("Could not find configuration at '%s' and no default available", path),
	}
}

// ParseFailureAt returns the Failure reported when the raw value at the
// rendered path could not be parsed. The Failure message is the message
// of err.
func ParseFailureAt(path string, err error) Failure {
	return Failure{
		Kind:    ParseFailure,
		Path:    path,
		Message: err.Error(),
		Cause:   err,
	}
}

// Error implements the error interface.
func (f Failure) Error() string {
	if f.Kind == ParseFailure && f.Path != "" {
		return f.Path + ": " + f.Message
	}
	return f.Message
}

// Unwrap implements the implicit interface for usage with errors.Is and errors.As.
func (f Failure) Unwrap() error {
	return f.Cause
}

// Equal reports whether f and other have the same message and cause.
func (f Failure) Equal(other Failure) bool {
	if f.Message != other.Message {
		return false
	}
	switch {
	case f.Cause == nil && other.Cause == nil:
		return true
	case f.Cause == nil || other.Cause == nil:
		return false
	case f.Cause == other.Cause:
		return true
	default:
		return f.Cause.Error() == other.Cause.Error()
	}
}

// Failures is an ordered collection of Failure which implements error.
// Failures are kept in the order they were discovered.
type Failures []Failure

// Error implements the error interface.
func (fs Failures) Error() string {
	switch len(fs) {
	case 0:
		return "config: no failures"
	case 1:
		return fs[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d config failures:", len(fs))
	for _, f := range fs {
		sb.WriteString("\n  - ")
		sb.WriteString(f.Error())
	}
	return sb.String()
}

// Unwrap exposes every Failure to errors.Is and errors.As.
func (fs Failures) Unwrap() []error {
	errs := make([]error, len(fs))
	for i, f := range fs {
		errs[i] = f
	}
	return errs
}

// Messages returns the message of every Failure, in order.
func (fs Failures) Messages() []string {
	msgs := make([]string, len(fs))
	for i, f := range fs {
		msgs[i] = f.Message
	}
	return msgs
}
