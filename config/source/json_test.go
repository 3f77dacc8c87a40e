// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/z5labs/typedconfig/config/key"

	"github.com/stretchr/testify/require"
)

func TestFromJson(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the underlying io.Reader fails", func(t *testing.T) {
			readErr := errors.New("failed to read")
			r := readFunc(func(b []byte) (int, error) {
				return 0, readErr
			})

			_, err := FromJson(r)
			require.ErrorIs(t, err, readErr)
		})

		t.Run("if the io.Reader contains invalid JSON", func(t *testing.T) {
			_, err := FromJson(strings.NewReader(`{"hello":`))

			var ierr InvalidJsonError
			require.ErrorAs(t, err, &ierr)
			require.NotEmpty(t, ierr.Error())
			require.NotNil(t, ierr.Unwrap())
		})

		t.Run("if the document is not an object", func(t *testing.T) {
			_, err := FromJson(strings.NewReader(`[1, 2]`))

			var ierr InvalidJsonError
			require.ErrorAs(t, err, &ierr)
		})
	})

	t.Run("will keep the literal form of numbers", func(t *testing.T) {
		m, err := FromJson(strings.NewReader(`{
	"port": 8080,
	"ratio": 1.25,
	"big": 18446744073709551615,
	"xs": [1, 2, 3],
	"a": {"b": true}
}`))
		require.NoError(t, err)

		testCases := []struct {
			Path  string
			Value string
		}{
			{Path: "port", Value: "8080"},
			{Path: "ratio", Value: "1.25"},
			{Path: "big", Value: "18446744073709551615"},
			{Path: "xs.2", Value: "3"},
			{Path: "a.b", Value: "true"},
		}
		for _, testCase := range testCases {
			t.Run(testCase.Path, func(t *testing.T) {
				v, found := m.Lookup(key.Parse(testCase.Path))
				require.True(t, found)
				require.Equal(t, testCase.Value, v)
			})
		}

		_, elems, found := m.LookupList(key.Parse("xs"))
		require.True(t, found)
		require.Equal(t, []string{"1", "2", "3"}, elems)
	})
}
