// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

// Combine2 combines two independent results. If either failed, the
// result holds the failures of a followed by those of b.
func Combine2[A, B, C any](a Validated[A], b Validated[B], f func(A, B) C) Validated[C] {
	fs := concat(a.failures, b.failures)
	if len(fs) > 0 {
		return invalidFrom[C](fs)
	}
	return Valid(f(a.v, b.v))
}

// Combine3 is Combine2 over three results.
func Combine3[A, B, C, D any](a Validated[A], b Validated[B], c Validated[C], f func(A, B, C) D) Validated[D] {
	fs := concat(a.failures, b.failures, c.failures)
	if len(fs) > 0 {
		return invalidFrom[D](fs)
	}
	return Valid(f(a.v, b.v, c.v))
}

// Combine4 is Combine2 over four results.
func Combine4[A, B, C, D, E any](a Validated[A], b Validated[B], c Validated[C], d Validated[D], f func(A, B, C, D) E) Validated[E] {
	fs := concat(a.failures, b.failures, c.failures, d.failures)
	if len(fs) > 0 {
		return invalidFrom[E](fs)
	}
	return Valid(f(a.v, b.v, c.v, d.v))
}

// Sequence turns a list of results into a result of a list. Every
// failure from every element is kept, in element order.
func Sequence[T any](vs []Validated[T]) Validated[[]T] {
	var fs Failures
	for _, v := range vs {
		fs = append(fs, v.failures...)
	}
	if len(fs) > 0 {
		return invalidFrom[[]T](fs)
	}

	out := make([]T, len(vs))
	for i, v := range vs {
		out[i] = v.v
	}
	return Valid(out)
}

// Result is implemented by every Validated regardless of its type parameter.
type Result interface {
	IsValid() bool
	Failures() Failures
}

// Join collects the failures of heterogeneous results. It returns nil if
// every result is valid, otherwise a Failures in argument order.
func Join(results ...Result) error {
	var fs Failures
	for _, r := range results {
		fs = append(fs, r.Failures()...)
	}
	if len(fs) == 0 {
		return nil
	}
	return fs
}

func concat(lists ...Failures) Failures {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	if n == 0 {
		return nil
	}
	fs := make(Failures, 0, n)
	for _, l := range lists {
		fs = append(fs, l...)
	}
	return fs
}

// Builder assembles a value of a compound type, T, from independently
// resolved parts while accumulating every failure.
//
//	b := config.NewBuilder(Server{})
//	config.Field(b, config.Get[string](src, key.Parse("server.host"), config.ValueOf("localhost")), func(s *Server, h string) { s.Host = h })
//	config.Field(b, config.Get[uint16](src, key.Parse("server.port"), config.None[uint16]()), func(s *Server, p uint16) { s.Port = p })
//	server := b.Build()
type Builder[T any] struct {
	v        T
	failures Failures
}

// NewBuilder returns a Builder starting from init.
func NewBuilder[T any](init T) *Builder[T] {
	return &Builder[T]{v: init}
}

// Field applies a valid part to the value being built via set, or
// records its failures.
func Field[T, F any](b *Builder[T], part Validated[F], set func(*T, F)) {
	if !part.IsValid() {
		b.failures = append(b.failures, part.failures...)
		return
	}
	set(&b.v, part.v)
}

// Build returns the assembled value, or every failure recorded by Field.
func (b *Builder[T]) Build() Validated[T] {
	if len(b.failures) > 0 {
		return invalidFrom[T](b.failures)
	}
	return Valid(b.v)
}
