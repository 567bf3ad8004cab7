// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package floatcmp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type coordPair struct {
	Name string
	XY   [2]float64
}

func TestEqualApprox(t *testing.T) {
	testCases := []struct {
		name     string
		expected float64
		actual   float64
		want     bool
	}{
		{"zeros", 0, 0, true},
		{"NaNs", math.NaN(), math.NaN(), true},
		{"zero not close to NaN", 0, math.NaN(), false},
		{"infinities", math.Inf(+1), math.Inf(+1), true},
		{"opposite infinities", math.Inf(+1), math.Inf(-1), false},
		{"signs", 1, -1, false},
		{"different", 1, 2, false},
		{"close to zero", 0, math.Nextafter(CloseMargin, math.Inf(-1)), true},
		{"not close to zero", 0, math.Nextafter(CloseMargin, math.Inf(+1)), false},
		{"close to one", 1, math.Nextafter(1+CloseFraction, math.Inf(-1)), true},
		{"not close to one", 1, math.Nextafter(1+CloseFraction, math.Inf(+1)), false},
		{"close to a distance", 57.055977911035896, 57.05597791103591, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, EqualApprox(tc.expected, tc.actual, CloseFraction, CloseMargin))

			// Floats nested in structs and slices compare the same way.
			expected := []coordPair{{Name: "p", XY: [2]float64{tc.expected, 1}}}
			actual := []coordPair{{Name: "p", XY: [2]float64{tc.actual, 1}}}
			require.Equal(t, tc.want, EqualApprox(expected, actual, CloseFraction, CloseMargin))
			require.Equal(t, tc.want, DiffApprox(expected, actual, CloseFraction, CloseMargin) == "")
		})
	}

	t.Run("other fields must match exactly", func(t *testing.T) {
		require.False(t, EqualApprox(coordPair{Name: "a"}, coordPair{Name: "b"}, CloseFraction, CloseMargin))
	})
}
