// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geodist

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// toR2 drops any ordinates beyond X and Y.
func toR2(c geom.Coord) r2.Point {
	return r2.Point{X: c.X(), Y: c.Y()}
}

// PointDistance returns the planar distance between p and q.
func PointDistance(p, q geom.Coord) float64 {
	return toR2(p).Sub(toR2(q)).Norm()
}

// PointToSegmentDistance returns the distance from p to the segment [a, b]
// along with the parametric position of the closest point on the segment,
// 0 being a and 1 being b. A zero-length segment is treated as the point a.
// A point lying on the segment is at distance exactly 0.
func PointToSegmentDistance(p, a, b geom.Coord) (float64, float64) {
	pp, pa, pb := toR2(p), toR2(a), toR2(b)
	ab := pb.Sub(pa)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return pp.Sub(pa).Norm(), 0
	}
	frac := pp.Sub(pa).Dot(ab) / lenSq
	// The projection is inexact, so points on the segment are detected with
	// the robust orientation test first.
	if xy.OrientationIndex(a, b, p) == orientation.Collinear && xy.IsPointWithinLineBounds(p, a, b) {
		return 0, clampUnit(frac)
	}
	switch {
	case frac <= 0:
		return pp.Sub(pa).Norm(), 0
	case frac >= 1:
		return pp.Sub(pb).Norm(), 1
	}
	return pp.Sub(interpolateR2(pa, pb, frac)).Norm(), frac
}

// SegmentToSegmentDistance returns the distance between the segments
// [a1, a2] and [b1, b2], along with the parametric positions of a pair of
// closest points on each of them.
//
// Intersecting segments, including collinear overlaps and touching
// endpoints, are at distance exactly 0. Otherwise the closest pair involves
// an endpoint of one of the segments; candidates are examined in the order
// a1, a2, b1, b2 and the first strict minimum is kept.
func SegmentToSegmentDistance(a1, a2, b1, b2 geom.Coord) (float64, float64, float64) {
	if posA, posB, ok := segmentIntersection(a1, a2, b1, b2); ok {
		return 0, posA, posB
	}

	minDist, posB := PointToSegmentDistance(a1, b1, b2)
	posA := 0.0
	if d, p := PointToSegmentDistance(a2, b1, b2); d < minDist {
		minDist, posA, posB = d, 1, p
	}
	if d, p := PointToSegmentDistance(b1, a1, a2); d < minDist {
		minDist, posA, posB = d, p, 0
	}
	if d, p := PointToSegmentDistance(b2, a1, a2); d < minDist {
		minDist, posA, posB = d, p, 1
	}
	return minDist, posA, posB
}

// segmentIntersection determines whether [a1, a2] and [b1, b2] share a
// point, returning the parametric positions of one such point on each
// segment.
func segmentIntersection(a1, a2, b1, b2 geom.Coord) (float64, float64, bool) {
	o1 := xy.OrientationIndex(a1, a2, b1)
	o2 := xy.OrientationIndex(a1, a2, b2)
	o3 := xy.OrientationIndex(b1, b2, a1)
	o4 := xy.OrientationIndex(b1, b2, a2)

	if int(o1)*int(o2) < 0 && int(o3)*int(o4) < 0 {
		// Proper crossing; the segments cannot be parallel here.
		pa1, pb1 := toR2(a1), toR2(b1)
		r := toR2(a2).Sub(pa1)
		s := toR2(b2).Sub(pb1)
		w := pb1.Sub(pa1)
		denom := r.Cross(s)
		return clampUnit(w.Cross(s) / denom), clampUnit(w.Cross(r) / denom), true
	}

	// Improper intersections have an endpoint of one segment lying on the
	// other one.
	if o3 == orientation.Collinear && xy.IsPointWithinLineBounds(a1, b1, b2) {
		_, posB := PointToSegmentDistance(a1, b1, b2)
		return 0, posB, true
	}
	if o4 == orientation.Collinear && xy.IsPointWithinLineBounds(a2, b1, b2) {
		_, posB := PointToSegmentDistance(a2, b1, b2)
		return 1, posB, true
	}
	if o1 == orientation.Collinear && xy.IsPointWithinLineBounds(b1, a1, a2) {
		_, posA := PointToSegmentDistance(b1, a1, a2)
		return posA, 0, true
	}
	if o2 == orientation.Collinear && xy.IsPointWithinLineBounds(b2, a1, a2) {
		_, posA := PointToSegmentDistance(b2, a1, a2)
		return posA, 1, true
	}
	return 0, 0, false
}

func interpolateR2(a, b r2.Point, frac float64) r2.Point {
	return a.Add(b.Sub(a).Mul(frac))
}

func clampUnit(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// rectDistance returns the distance between two rectangles, which is 0 if
// they overlap.
func rectDistance(a, b r2.Rect) float64 {
	dx := math.Max(0, math.Max(a.X.Lo-b.X.Hi, b.X.Lo-a.X.Hi))
	dy := math.Max(0, math.Max(a.Y.Lo-b.Y.Hi, b.Y.Lo-a.Y.Hi))
	return math.Hypot(dx, dy)
}
