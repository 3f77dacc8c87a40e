// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectedVal Duration
		expectErr   bool
	}{
		{
			name:        "parses Inf",
			input:       "Inf",
			expectedVal: Inf,
		},
		{
			name:        "parses MinusInf",
			input:       "MinusInf",
			expectedVal: MinusInf,
		},
		{
			name:        "parses Zero",
			input:       "Zero",
			expectedVal: Zero,
		},
		{
			name:        "parses complex duration",
			input:       "1h30m45s",
			expectedVal: Finite(time.Hour + 30*time.Minute + 45*time.Second),
		},
		{
			name:        "parses negative duration",
			input:       "-250ms",
			expectedVal: Finite(-250 * time.Millisecond),
		},
		{
			name:      "special tokens are case sensitive",
			input:     "inf",
			expectErr: true,
		},
		{
			name:      "errors on invalid duration",
			input:     "not-a-duration",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val, err := ParseDuration(tc.input)
			if tc.expectErr {
				require.EqualError(t, err, "Could not parse value '"+tc.input+"' as a valid duration for type 'Duration'")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedVal, val)
		})
	}
}

func TestFiniteDuration(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectedVal time.Duration
		expectErr   bool
	}{
		{
			name:        "parses seconds",
			input:       "5s",
			expectedVal: 5 * time.Second,
		},
		{
			name:        "parses Zero",
			input:       "Zero",
			expectedVal: 0,
		},
		{
			name:      "rejects Inf",
			input:     "Inf",
			expectErr: true,
		},
		{
			name:      "rejects MinusInf",
			input:     "MinusInf",
			expectErr: true,
		},
		{
			name:      "rejects missing unit",
			input:     "10",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			val, err := FiniteDuration(tc.input)
			if tc.expectErr {
				require.EqualError(t, err, "Could not parse value '"+tc.input+"' as a valid duration for type 'FiniteDuration'")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedVal, val)
		})
	}
}

func TestFiniteDuration_ResolveInf(t *testing.T) {
	v := Get[time.Duration](staticSource{"test": "Inf"}, keyTest, None[time.Duration]())

	require.Equal(t, []string{"Could not parse value 'Inf' as a valid duration for type 'FiniteDuration'"}, v.Failures().Messages())
}

func TestDuration_Methods(t *testing.T) {
	require.True(t, Inf.IsInf(1))
	require.True(t, Inf.IsInf(0))
	require.False(t, Inf.IsInf(-1))
	require.True(t, MinusInf.IsInf(-1))
	require.False(t, Zero.IsInf(0))
	require.True(t, Zero.IsFinite())
	require.False(t, MinusInf.IsFinite())

	d, ok := Finite(time.Minute).Finite()
	require.True(t, ok)
	require.Equal(t, time.Minute, d)

	_, ok = Inf.Finite()
	require.False(t, ok)

	require.Equal(t, "Inf", Inf.String())
	require.Equal(t, "MinusInf", MinusInf.String())
	require.Equal(t, "0s", Zero.String())
	require.Equal(t, "1m0s", Finite(time.Minute).String())
}

func TestDuration_RoundTrip(t *testing.T) {
	for _, d := range []Duration{Inf, MinusInf, Zero, Finite(90 * time.Second), Finite(-time.Nanosecond)} {
		t.Run(d.String(), func(t *testing.T) {
			got, err := ParseDuration(d.String())
			require.NoError(t, err)
			require.Equal(t, d, got)
		})
	}
}
