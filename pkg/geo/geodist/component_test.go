// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geodist

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestDecompose(t *testing.T) {
	type expectedComponent struct {
		kind     ComponentKind
		numCoord int
		areal    bool
		polygon  int
		ring     int
	}
	testCases := []struct {
		wkt      string
		expected []expectedComponent
	}{
		{
			"POINT (1 2)",
			[]expectedComponent{{PointComponent, 1, false, -1, 0}},
		},
		{
			"MULTIPOINT ((1 2), (3 4))",
			[]expectedComponent{
				{PointComponent, 1, false, -1, 0},
				{PointComponent, 1, false, -1, 0},
			},
		},
		{
			"LINESTRING (0 0, 1 1, 2 2)",
			[]expectedComponent{{LinearComponent, 3, false, -1, 0}},
		},
		{
			"MULTILINESTRING ((0 0, 1 1), (2 2, 3 3, 4 4))",
			[]expectedComponent{
				{LinearComponent, 2, false, -1, 0},
				{LinearComponent, 3, false, -1, 0},
			},
		},
		{
			"POLYGON ((0 0, 10 0, 10 10, 0 10, 0 0), (2 2, 8 2, 8 8, 2 2))",
			[]expectedComponent{
				{LinearComponent, 5, true, 0, 0},
				{LinearComponent, 4, true, 0, 1},
			},
		},
		{
			"MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)), ((5 5, 6 5, 6 6, 5 5)))",
			[]expectedComponent{
				{LinearComponent, 4, true, 0, 0},
				{LinearComponent, 4, true, 1, 0},
			},
		},
		{
			"GEOMETRYCOLLECTION (POINT EMPTY, LINESTRING (0 0, 1 1), GEOMETRYCOLLECTION (POLYGON ((0 0, 1 0, 1 1, 0 0)), POINT (3 3)))",
			[]expectedComponent{
				{LinearComponent, 2, false, -1, 0},
				{LinearComponent, 4, true, 0, 0},
				{PointComponent, 1, false, -1, 0},
			},
		},
		{
			"GEOMETRYCOLLECTION EMPTY",
			nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.wkt, func(t *testing.T) {
			components, err := Decompose(mustParse(t, tc.wkt), SideB)
			require.NoError(t, err)
			require.Len(t, components, len(tc.expected))
			for i, c := range components {
				exp := tc.expected[i]
				require.Equal(t, i, c.Index)
				require.Equal(t, SideB, c.Side)
				require.Equal(t, exp.kind, c.Kind)
				require.Equal(t, exp.numCoord, c.NumCoords())
				require.Equal(t, exp.areal, c.Areal)
				require.Equal(t, exp.polygon, c.Polygon)
				require.Equal(t, exp.ring, c.Ring)
				if c.Kind == PointComponent {
					require.Equal(t, 0, c.NumSegments())
				} else {
					require.Equal(t, c.NumCoords()-1, c.NumSegments())
				}
			}
		})
	}
}

func TestDecomposeBounds(t *testing.T) {
	components, err := Decompose(mustParse(t, "LINESTRING (3 -1, 0 4, 2 2)"), SideA)
	require.NoError(t, err)
	require.Len(t, components, 1)
	require.Equal(t, r2.RectFromPoints(r2.Point{X: 0, Y: -1}, r2.Point{X: 3, Y: 4}), components[0].Bounds())
}

func TestDecomposeSingleCoordinateLine(t *testing.T) {
	ls := geom.NewLineStringFlat(geom.XY, []float64{1, 2})
	components, err := Decompose(ls, SideA)
	require.NoError(t, err)
	require.Len(t, components, 1)
	require.Equal(t, PointComponent, components[0].Kind)
	require.Equal(t, geom.Coord{1, 2}, components[0].Coord(0))
}

func TestDecomposeInvalidRings(t *testing.T) {
	testCases := []struct {
		desc string
		g    geom.T
	}{
		{
			"too few coordinates",
			geom.NewPolygonFlat(geom.XY, []float64{0, 0, 1, 0, 0, 0}, []int{6}),
		},
		{
			"unclosed exterior",
			geom.NewPolygonFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 1}, []int{8}),
		},
		{
			"unclosed hole",
			geom.NewPolygonFlat(
				geom.XY,
				[]float64{0, 0, 10, 0, 10, 10, 0, 0, 1, 1, 2, 1, 2, 2, 3, 3},
				[]int{8, 16},
			),
		},
		{
			"unclosed linear ring",
			geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 1}),
		},
		{
			"inside a collection",
			geom.NewGeometryCollection().MustPush(
				geom.NewPointFlat(geom.XY, []float64{0, 0}),
				geom.NewPolygonFlat(geom.XY, []float64{0, 0, 1, 0, 0, 0}, []int{6}),
			),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Decompose(tc.g, SideA)
			require.Error(t, err)
			require.True(t, IsInvalidRingError(err), "unexpected error: %v", err)
		})
	}
}
