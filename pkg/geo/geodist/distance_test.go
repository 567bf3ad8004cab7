// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geodist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

func mustParse(t *testing.T, s string) geom.T {
	g, err := wkt.Unmarshal(s)
	require.NoError(t, err)
	return g
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*1e6)/1e6, 'f', -1, 64)
}

func formatCoord(c geom.Coord) string {
	parts := make([]string, len(c))
	for i, f := range c {
		parts[i] = formatFloat(f)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			lines := strings.Split(strings.TrimSpace(d.Input), "\n")
			require.Len(t, lines, 2, "expected two geometries")
			a := mustParse(t, lines[0])
			b := mustParse(t, lines[1])

			switch d.Cmd {
			case "distance":
				res, err := Compute(a, b)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				swapped, err := Distance(b, a)
				require.NoError(t, err)
				require.Equal(t, res.Distance, swapped, "distance is not symmetric")

				pts := res.NearestPoints()
				require.InDelta(t, res.Distance, PointDistance(pts[0], pts[1]), 1e-9)
				return fmt.Sprintf("distance: %s\nnearest: %s %s",
					formatFloat(res.Distance), formatCoord(pts[0]), formatCoord(pts[1]))
			case "within":
				var threshold float64
				d.ScanArgs(t, "threshold", &threshold)
				ok, err := WithinDistance(a, b, threshold)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				return strconv.FormatBool(ok)
			default:
				return fmt.Sprintf("unknown command: %s", d.Cmd)
			}
		})
	})
}

func TestCompute(t *testing.T) {
	testCases := []struct {
		desc      string
		a         string
		b         string
		expected  float64
		expectedA geom.Coord
		expectedB geom.Coord
	}{
		{
			desc:      "point outside triangle",
			a:         "POLYGON ((200 180, 60 140, 60 260, 200 180))",
			b:         "POINT (140 280)",
			expected:  57.055977911035896,
			expectedA: geom.Coord{111.6923076923077, 230.46153846153845},
			expectedB: geom.Coord{140, 280},
		},
		{
			desc:      "disjoint segments",
			a:         "LINESTRING (100 100, 200 200)",
			b:         "LINESTRING (150 121, 200 0)",
			expected:  20.506096654409877,
			expectedA: geom.Coord{135.5, 135.5},
			expectedB: geom.Coord{150, 121},
		},
		{
			desc:      "crossing segments",
			a:         "LINESTRING (100 100, 200 200)",
			b:         "LINESTRING (100 200, 200 100)",
			expected:  0,
			expectedA: geom.Coord{150, 150},
			expectedB: geom.Coord{150, 150},
		},
		{
			desc:      "line inside hole",
			a:         "POLYGON ((76 185, 125 283, 331 276, 324 122, 177 70, 184 155, 69 123, 76 185), (267 237, 148 248, 135 185, 223 189, 251 151, 286 183, 267 237))",
			b:         "LINESTRING (153 204, 185 224, 209 207, 238 222, 254 186)",
			expected:  13.788860460124573,
			expectedA: geom.Coord{139.4956500724988, 206.78661188980183},
			expectedB: geom.Coord{153, 204},
		},
		{
			desc:      "point on point",
			a:         "POINT (1 2)",
			b:         "MULTIPOINT ((3 4), (1 2))",
			expected:  0,
			expectedA: geom.Coord{1, 2},
			expectedB: geom.Coord{1, 2},
		},
		{
			desc:      "point inside polygon",
			a:         "POINT (5 5)",
			b:         "MULTIPOLYGON (((20 20, 30 20, 30 30, 20 20)), ((0 0, 10 0, 10 10, 0 10, 0 0)))",
			expected:  0,
			expectedA: geom.Coord{5, 5},
			expectedB: geom.Coord{5, 5},
		},
		{
			desc:      "point inside hole",
			a:         "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 8 2, 8 8, 2 8, 2 2))",
			b:         "POINT (5 4)",
			expected:  2,
			expectedA: geom.Coord{5, 2},
			expectedB: geom.Coord{5, 4},
		},
		{
			desc:      "point on hole boundary",
			a:         "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 8 2, 8 8, 2 8, 2 2))",
			b:         "POINT (5 2)",
			expected:  0,
			expectedA: geom.Coord{5, 2},
			expectedB: geom.Coord{5, 2},
		},
		{
			desc:      "ties keep the first segment",
			a:         "LINESTRING (0 0, 0 10)",
			b:         "LINESTRING (2 0, 2 10)",
			expected:  2,
			expectedA: geom.Coord{0, 0},
			expectedB: geom.Coord{2, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			a := mustParse(t, tc.a)
			b := mustParse(t, tc.b)

			res, err := Compute(a, b)
			require.NoError(t, err)
			require.InDelta(t, tc.expected, res.Distance, 1e-9)
			pts := res.NearestPoints()
			require.InDeltaSlice(t, tc.expectedA, pts[0], 1e-9)
			require.InDeltaSlice(t, tc.expectedB, pts[1], 1e-9)

			dist, err := Distance(a, b)
			require.NoError(t, err)
			require.Equal(t, res.Distance, dist)

			swapped, err := Distance(b, a)
			require.NoError(t, err)
			require.Equal(t, dist, swapped)

			nearest, err := NearestPoints(a, b)
			require.NoError(t, err)
			require.Equal(t, pts, nearest)
		})
	}
}

func TestPointOnLineDistance(t *testing.T) {
	line := mustParse(t, "LINESTRING (0 0, 14 42)")
	point := mustParse(t, "POINT (9 27)")
	for _, args := range [][2]geom.T{{line, point}, {point, line}} {
		dist, err := Distance(args[0], args[1])
		require.NoError(t, err)
		require.Equal(t, 0.0, dist)
	}
	res, err := Compute(line, point)
	require.NoError(t, err)
	require.InDeltaSlice(t, geom.Coord{9, 27}, res.NearestPoints()[0], 1e-9)
}

func TestComputeContainmentLocations(t *testing.T) {
	a := mustParse(t, "POINT (5 5)")
	b := mustParse(t, "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))")

	res, err := Compute(a, b)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Distance)
	require.False(t, res.Locations[0].InsideArea())
	require.True(t, res.Locations[1].InsideArea())
	require.Equal(t, SideB, res.Locations[1].Component.Side)
	require.Equal(t, 0, res.Locations[1].Component.Ring)
	require.Equal(t, "B[0] inside", res.Locations[1].String())
}

func TestSelfDistance(t *testing.T) {
	for _, s := range []string{
		"POINT (1 1)",
		"MULTIPOINT ((1 1), (2 2))",
		"LINESTRING (0 0, 1 1, 2 0)",
		"POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 8 2, 8 8, 2 8, 2 2))",
		"GEOMETRYCOLLECTION (LINESTRING (0 0, 1 1), POINT (5 5))",
	} {
		t.Run(s, func(t *testing.T) {
			g := mustParse(t, s)
			dist, err := Distance(g, g)
			require.NoError(t, err)
			require.Equal(t, 0.0, dist)
		})
	}
}

func TestEmptyGeometry(t *testing.T) {
	for _, tc := range []struct {
		a, b string
	}{
		{"POINT EMPTY", "POINT (1 1)"},
		{"POINT (1 1)", "POLYGON EMPTY"},
		{"LINESTRING EMPTY", "MULTIPOINT EMPTY"},
	} {
		t.Run(tc.a+" "+tc.b, func(t *testing.T) {
			a := mustParse(t, tc.a)
			b := mustParse(t, tc.b)

			_, err := Distance(a, b)
			require.True(t, IsEmptyGeometryError(err), "unexpected error: %v", err)
			_, err = NearestPoints(a, b)
			require.True(t, IsEmptyGeometryError(err), "unexpected error: %v", err)
			_, err = WithinDistance(a, b, 10)
			require.True(t, IsEmptyGeometryError(err), "unexpected error: %v", err)
		})
	}
}

func TestInvalidRing(t *testing.T) {
	unclosed := geom.NewPolygonFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 1}, []int{8})
	_, err := Distance(unclosed, geom.NewPointFlat(geom.XY, []float64{5, 5}))
	require.True(t, IsInvalidRingError(err), "unexpected error: %v", err)
	require.False(t, IsEmptyGeometryError(err))
}

func TestWithinDistance(t *testing.T) {
	testCases := []struct {
		desc      string
		a         string
		b         string
		threshold float64
		expected  bool
	}{
		{"below threshold", "POINT (0 0)", "POINT (3 4)", 5.5, true},
		{"at threshold", "POINT (0 0)", "POINT (3 4)", 5, true},
		{"above threshold", "POINT (0 0)", "POINT (3 4)", 4.9, false},
		{"negative threshold", "POINT (0 0)", "POINT (0 0)", -1, false},
		{"contained", "POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0))", "LINESTRING (5 5, 50 50)", 0, true},
		{"any pair within", "MULTIPOINT ((0 0), (100 100))", "POINT (101 100)", 1, true},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ok, err := WithinDistance(mustParse(t, tc.a), mustParse(t, tc.b), tc.threshold)
			require.NoError(t, err)
			require.Equal(t, tc.expected, ok)
		})
	}
}
