// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type server struct {
	Host    string
	Port    uint16
	Timeout time.Duration
}

func TestCombine2(t *testing.T) {
	pair := func(a, b int) [2]int { return [2]int{a, b} }

	t.Run("will combine valid results", func(t *testing.T) {
		v, err := Combine2(Valid(1), Valid(2), pair).Unwrap()
		require.NoError(t, err)
		require.Equal(t, [2]int{1, 2}, v)
	})

	t.Run("will keep both failures in discovery order", func(t *testing.T) {
		src := staticSource{"b": "nope"}

		a := Get[int](src, pathOf("a"), None[int]())
		b := Get[int](src, pathOf("b"), None[int]())

		v := Combine2(a, b, pair)
		require.Equal(t, []string{
			"Could not find configuration at 'a' and no default available",
			"Could not parse value 'nope' as a valid integer for type 'int'",
		}, v.Failures().Messages())
	})

	t.Run("will keep the only failure", func(t *testing.T) {
		v := Combine2(Valid(1), Invalid[int](NotFoundAt("b")), pair)
		require.Len(t, v.Failures(), 1)
	})
}

func TestCombine_Associative(t *testing.T) {
	a := Invalid[int](NotFoundAt("a"))
	b := Invalid[int](NotFoundAt("b"))
	c := Invalid[int](NotFoundAt("c"))
	sum := func(x, y int) int { return x + y }

	left := Combine2(Combine2(a, b, sum), c, sum)
	right := Combine2(a, Combine2(b, c, sum), sum)

	require.Equal(t, left.Failures(), right.Failures())
	require.Equal(t, []string{"a", "b", "c"}, paths(left.Failures()))
}

func TestCombine3And4(t *testing.T) {
	v3 := Combine3(Valid("h"), Invalid[uint16](NotFoundAt("p")), Invalid[time.Duration](NotFoundAt("t")), func(h string, p uint16, d time.Duration) server {
		return server{Host: h, Port: p, Timeout: d}
	})
	require.Equal(t, []string{"p", "t"}, paths(v3.Failures()))

	v4, err := Combine4(Valid(1), Valid(2), Valid(3), Valid(4), func(a, b, c, d int) int { return a + b + c + d }).Unwrap()
	require.NoError(t, err)
	require.Equal(t, 10, v4)
}

func TestSequence(t *testing.T) {
	v, err := Sequence([]Validated[int]{Valid(1), Valid(2)}).Unwrap()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, v)

	bad := Sequence([]Validated[int]{Invalid[int](NotFoundAt("x")), Valid(2), Invalid[int](NotFoundAt("y"), NotFoundAt("z"))})
	require.Equal(t, []string{"x", "y", "z"}, paths(bad.Failures()))

	empty, err := Sequence[int](nil).Unwrap()
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestJoin(t *testing.T) {
	require.NoError(t, Join(Valid(1), Valid("a")))

	err := Join(Valid(1), Invalid[string](NotFoundAt("a")), Invalid[bool](NotFoundAt("b")))

	var fs Failures
	require.True(t, errors.As(err, &fs))
	require.Equal(t, []string{"a", "b"}, paths(fs))
}

func TestBuilder(t *testing.T) {
	build := func(src Source) Validated[server] {
		b := NewBuilder(server{Host: "localhost"})
		Field(b, Get[string](src, pathOf("server.host"), None[string]()), func(s *server, h string) { s.Host = h })
		Field(b, Get[uint16](src, pathOf("server.port"), ValueOf[uint16](8080)), func(s *server, p uint16) { s.Port = p })
		Field(b, Get[time.Duration](src, pathOf("server.timeout"), None[time.Duration]()), func(s *server, d time.Duration) { s.Timeout = d })
		return b.Build()
	}

	t.Run("will build the value", func(t *testing.T) {
		src := staticSource{
			"server.host":    "example.com",
			"server.timeout": "5s",
		}

		v, err := build(src).Unwrap()
		require.NoError(t, err)
		require.Equal(t, server{Host: "example.com", Port: 8080, Timeout: 5 * time.Second}, v)
	})

	t.Run("will report every failing field", func(t *testing.T) {
		src := staticSource{
			"server.port":    "99999",
			"server.timeout": "Inf",
		}

		v := build(src)
		require.Equal(t, []string{
			"Could not find configuration at 'server.host' and no default available",
			"Could not parse value '99999' as a valid unsigned integer for type 'uint16'",
			"Could not parse value 'Inf' as a valid duration for type 'FiniteDuration'",
		}, v.Failures().Messages())
	})
}

func TestMapValid(t *testing.T) {
	v, err := MapValid(Valid(2), func(n int) string { return string(rune('a' + n)) }).Unwrap()
	require.NoError(t, err)
	require.Equal(t, "c", v)

	bad := MapValid(Invalid[int](NotFoundAt("x")), func(n int) string { return "" })
	require.False(t, bad.IsValid())
	require.Equal(t, "unused", bad.OrElse("unused"))
}

func paths(fs Failures) []string {
	ps := make([]string, len(fs))
	for i, f := range fs {
		ps[i] = f.Path
	}
	return ps
}
