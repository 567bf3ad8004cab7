// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomfn

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/geodist/pkg/geo"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestLineInterpolatePoints(t *testing.T) {
	line := "LINESTRING (0 0, 10 0, 10 10)"
	testCases := []struct {
		desc     string
		line     string
		fraction float64
		repeat   bool
		expected string
	}{
		{"start", line, 0, false, "POINT (0 0)"},
		{"end", line, 1, false, "POINT (10 10)"},
		{"first segment", line, 0.25, false, "POINT (5 0)"},
		{"vertex", line, 0.5, false, "POINT (10 0)"},
		{"second segment", line, 0.75, false, "POINT (10 5)"},
		{"repeat", line, 0.25, true, "MULTIPOINT ((5 0), (10 0), (10 5), (10 10))"},
		{"repeat above half", line, 0.75, true, "POINT (10 5)"},
		{"repeat zero", line, 0, true, "POINT (0 0)"},
		{"z", "LINESTRING Z (0 0 0, 10 0 20)", 0.5, false, "POINT Z (5 0 10)"},
		{"srid", "SRID=4326;LINESTRING (0 0, 0 4)", 0.5, false, "SRID=4326;POINT (0 2)"},
		{"empty", "LINESTRING EMPTY", 0.5, false, "POINT EMPTY"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ret, err := LineInterpolatePoints(geo.MustParseGeometry(tc.line), tc.fraction, tc.repeat)
			require.NoError(t, err)
			require.Equal(t, geo.MustParseGeometry(tc.expected), ret)
		})
	}

	t.Run("fraction out of range", func(t *testing.T) {
		_, err := LineInterpolatePoints(geo.MustParseGeometry(line), 1.5, false)
		require.EqualError(t, err, "fraction 1.500000 should be within [0 1] range")
	})

	t.Run("not a linestring", func(t *testing.T) {
		_, err := LineInterpolatePoints(geo.MustParseGeometry("POINT (0 0)"), 0.5, false)
		require.EqualError(t, err, "geometry Point should be LineString")
	})
}

func TestLineLocatePoint(t *testing.T) {
	testCases := []struct {
		lineString *geom.LineString
		point      *geom.Point
		expected   float64
	}{
		{
			lineString: geom.NewLineStringFlat(geom.XY, []float64{0, 1, 1, 0}),
			point:      geom.NewPointFlat(geom.XY, []float64{0, 0}),
			expected:   0.5,
		},
		{
			lineString: geom.NewLineStringFlat(geom.XY, []float64{-1, -1, -1, 1}),
			point:      geom.NewPointFlat(geom.XY, []float64{-1, 0}),
			expected:   0.5,
		},
		{
			lineString: geom.NewLineStringFlat(geom.XY, []float64{1, -1, -1, 1}),
			point:      geom.NewPointFlat(geom.XY, []float64{-1, 0}),
			expected:   0.75,
		},
		{
			lineString: geom.NewLineStringFlat(geom.XY, []float64{0, 6, 3, 0}),
			point:      geom.NewPointFlat(geom.XY, []float64{0, 0}),
			expected:   0.8,
		},
		{
			lineString: geom.NewLineStringFlat(geom.XY, []float64{6, 6, 3, 0}),
			point:      geom.NewPointFlat(geom.XY, []float64{3, 1}),
			expected:   0.87,
		},
		{
			lineString: geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0, 10, 10}),
			point:      geom.NewPointFlat(geom.XY, []float64{12, 5}),
			expected:   0.75,
		},
		{
			lineString: geom.NewLineStringFlat(geom.XY, []float64{0, 0, 10, 0, 10, 10}),
			point:      geom.NewPointFlat(geom.XY, []float64{-3, -3}),
			expected:   0,
		},
	}

	for index, tc := range testCases {
		t.Run(fmt.Sprintf("%d", index), func(t *testing.T) {
			line, err := geo.MakeGeometryFromGeomT(tc.lineString)
			require.NoError(t, err)

			p, err := geo.MakeGeometryFromGeomT(tc.point)
			require.NoError(t, err)

			fraction, err := LineLocatePoint(line, p)
			require.NoError(t, err)

			fraction = math.Round(fraction*100) / 100

			require.Equal(t, tc.expected, fraction)
		})
	}

	t.Run("not a point", func(t *testing.T) {
		_, err := LineLocatePoint(
			geo.MustParseGeometry("LINESTRING (0 0, 1 1)"),
			geo.MustParseGeometry("LINESTRING (0 0, 1 1)"),
		)
		require.Error(t, err)
	})
}
