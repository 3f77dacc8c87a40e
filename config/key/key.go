// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for addressing values inside nested configuration.
package key

import (
	"strings"
	"unicode"
)

// Path is an ordered sequence of segments identifying a single config value.
type Path []string

// Parse splits a dotted key, e.g. "server.http.port", into a Path.
// Empty segments are dropped so "a..b" and ".a.b." both parse to [a b].
func Parse(s string) Path {
	fields := strings.Split(s, ".")
	p := make(Path, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		p = append(p, f)
	}
	return p
}

// Of builds a Path from the given segments.
func Of(segments ...string) Path {
	return Path(segments)
}

// Child returns a new Path with the given segments appended. The
// receiver is never modified.
func (p Path) Child(segments ...string) Path {
	c := make(Path, 0, len(p)+len(segments))
	c = append(c, p...)
	return append(c, segments...)
}

// Equal reports whether p and other contain the same segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the Path in its dotted form.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// EnvName renders the Path as an environment variable name. Segments
// are upper cased, joined with an underscore and any character which is
// not a letter or digit is replaced by an underscore. A non-empty prefix
// is prepended the same way.
//
//	EnvName("APP", Parse("server.read-timeout")) == "APP_SERVER_READ_TIMEOUT"
func EnvName(prefix string, p Path) string {
	var sb strings.Builder
	write := func(s string) {
		if sb.Len() > 0 {
			sb.WriteByte('_')
		}
		for _, r := range s {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				sb.WriteRune(unicode.ToUpper(r))
				continue
			}
			sb.WriteByte('_')
		}
	}
	if prefix != "" {
		write(prefix)
	}
	for _, s := range p {
		write(s)
	}
	return sb.String()
}
