// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"time"
)

// Literal tokens for the special duration values. They are matched
// case sensitively.
const (
	InfLiteral      = "Inf"
	MinusInfLiteral = "MinusInf"
	ZeroLiteral     = "Zero"
)

// Duration is a time.Duration which may also be positive or negative infinity.
type Duration struct {
	d time.Duration

	// 1 for Inf, -1 for MinusInf
	inf int8
}

var (
	// Inf is longer than any finite Duration.
	Inf = Duration{inf: 1}

	// MinusInf is shorter than any finite Duration.
	MinusInf = Duration{inf: -1}

	// Zero is the zero length, finite Duration.
	Zero = Duration{}
)

// Finite returns a Duration of length d.
func Finite(d time.Duration) Duration {
	return Duration{d: d}
}

// IsFinite reports whether d is neither Inf nor MinusInf.
func (d Duration) IsFinite() bool {
	return d.inf == 0
}

// IsInf reports whether d is Inf (sign > 0), MinusInf (sign < 0) or
// either (sign == 0), like math.IsInf.
func (d Duration) IsInf(sign int) bool {
	switch {
	case sign > 0:
		return d.inf > 0
	case sign < 0:
		return d.inf < 0
	default:
		return d.inf != 0
	}
}

// Finite returns the length of d, and false if d is infinite.
func (d Duration) Finite() (time.Duration, bool) {
	return d.d, d.inf == 0
}

// String renders d in a form accepted by ParseDuration.
func (d Duration) String() string {
	switch {
	case d.inf > 0:
		return InfLiteral
	case d.inf < 0:
		return MinusInfLiteral
	default:
		return d.d.String()
	}
}

// ErrInfiniteDuration is the cause reported when an infinite literal is
// given for a FiniteDuration.
var ErrInfiniteDuration = errors.New("duration must be finite")

// ParseDuration parses "Inf", "MinusInf", "Zero" or a Go duration
// string such as "1h30m" into a Duration.
func ParseDuration(raw string) (Duration, error) {
	switch raw {
	case InfLiteral:
		return Inf, nil
	case MinusInfLiteral:
		return MinusInf, nil
	case ZeroLiteral:
		return Zero, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return Duration{}, &ParseError{Value: raw, Kind: "duration", Type: "Duration", Cause: err}
	}
	return Finite(d), nil
}

// FiniteDuration parses "Zero" or a Go duration string. Unlike
// ParseDuration it rejects "Inf" and "MinusInf".
func FiniteDuration(raw string) (time.Duration, error) {
	switch raw {
	case InfLiteral, MinusInfLiteral:
		return 0, &ParseError{Value: raw, Kind: "duration", Type: "FiniteDuration", Cause: ErrInfiniteDuration}
	case ZeroLiteral:
		return 0, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, &ParseError{Value: raw, Kind: "duration", Type: "FiniteDuration", Cause: err}
	}
	return d, nil
}
