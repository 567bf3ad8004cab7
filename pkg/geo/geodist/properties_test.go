// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geodist

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/twpayne/go-geom"
)

const propertyTolerance = 1e-6

func ordinate() gopter.Gen {
	return gen.Float64Range(-1000, 1000)
}

func TestDistanceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	lines := func(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) (geom.T, geom.T) {
		a := geom.NewLineStringFlat(geom.XY, []float64{ax1, ay1, ax2, ay2})
		b := geom.NewLineStringFlat(geom.XY, []float64{bx1, by1, bx2, by2})
		return a, b
	}

	properties.Property("segment distance is symmetric and non-negative", prop.ForAll(
		func(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) bool {
			a, b := lines(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
			ab, err := Distance(a, b)
			if err != nil {
				return false
			}
			ba, err := Distance(b, a)
			if err != nil {
				return false
			}
			return ab >= 0 && ab == ba
		},
		ordinate(), ordinate(), ordinate(), ordinate(),
		ordinate(), ordinate(), ordinate(), ordinate(),
	))

	properties.Property("witnesses realize the distance", prop.ForAll(
		func(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) bool {
			a, b := lines(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
			res, err := Compute(a, b)
			if err != nil {
				return false
			}
			pts := res.NearestPoints()
			return math.Abs(PointDistance(pts[0], pts[1])-res.Distance) <= propertyTolerance*(1+res.Distance)
		},
		ordinate(), ordinate(), ordinate(), ordinate(),
		ordinate(), ordinate(), ordinate(), ordinate(),
	))

	properties.Property("distance is bounded by any vertex pair", prop.ForAll(
		func(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) bool {
			a, b := lines(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
			dist, err := Distance(a, b)
			if err != nil {
				return false
			}
			bound := math.Min(
				PointDistance(geom.Coord{ax1, ay1}, geom.Coord{bx2, by2}),
				PointDistance(geom.Coord{ax2, ay2}, geom.Coord{bx1, by1}),
			)
			return dist <= bound+propertyTolerance*(1+bound)
		},
		ordinate(), ordinate(), ordinate(), ordinate(),
		ordinate(), ordinate(), ordinate(), ordinate(),
	))

	properties.Property("self distance is zero", prop.ForAll(
		func(x1, y1, x2, y2, x3, y3 float64) bool {
			g := geom.NewLineStringFlat(geom.XY, []float64{x1, y1, x2, y2, x3, y3})
			dist, err := Distance(g, g)
			return err == nil && dist == 0
		},
		ordinate(), ordinate(), ordinate(), ordinate(), ordinate(), ordinate(),
	))

	properties.Property("points inside a square are at distance zero", prop.ForAll(
		func(x, y float64) bool {
			square := geom.NewPolygonFlat(geom.XY, []float64{-1000, -1000, 1000, -1000, 1000, 1000, -1000, 1000, -1000, -1000}, []int{10})
			res, err := Compute(geom.NewPointFlat(geom.XY, []float64{x, y}), square)
			if err != nil {
				return false
			}
			pts := res.NearestPoints()
			return res.Distance == 0 && pts[0].Equal(geom.XY, pts[1])
		},
		ordinate(), ordinate(),
	))

	properties.Property("within distance agrees with distance", prop.ForAll(
		func(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2, threshold float64) bool {
			a, b := lines(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2)
			dist, err := Distance(a, b)
			if err != nil {
				return false
			}
			ok, err := WithinDistance(a, b, threshold)
			return err == nil && ok == (dist <= threshold)
		},
		ordinate(), ordinate(), ordinate(), ordinate(),
		ordinate(), ordinate(), ordinate(), ordinate(),
		gen.Float64Range(0, 2000),
	))

	properties.TestingRun(t)
}
