// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geodist

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// RingSide describes where a point lies with respect to a closed ring.
type RingSide int

const (
	// Outside means the point is in the exterior of the ring.
	Outside RingSide = iota
	// OnBoundary means the point lies on one of the ring's edges.
	OnBoundary
	// Inside means the point is strictly inside the ring.
	Inside
)

func (s RingSide) String() string {
	switch s {
	case Outside:
		return "outside"
	case OnBoundary:
		return "boundary"
	case Inside:
		return "inside"
	}
	return "unknown"
}

// LocatePointInRing determines whether p is inside, on the boundary of or
// outside the closed ring given by its flat coordinates.
//
// Each edge is first checked for containing p, then counted if it crosses
// the ray extending from p towards +X. Edges are treated as half-open in Y
// so that a ray passing through a vertex is counted exactly once.
func LocatePointInRing(layout geom.Layout, flatCoords []float64, p geom.Coord) RingSide {
	stride := layout.Stride()
	n := len(flatCoords) / stride
	if n < minRingCoords {
		panic(errors.AssertionFailedf("ring with %d coordinates", n))
	}
	crossings := 0
	for i := 0; i+1 < n; i++ {
		a := geom.Coord(flatCoords[i*stride : (i+1)*stride])
		b := geom.Coord(flatCoords[(i+1)*stride : (i+2)*stride])
		o := xy.OrientationIndex(a, b, p)
		if o == orientation.Collinear && xy.IsPointWithinLineBounds(p, a, b) {
			return OnBoundary
		}
		switch {
		case a.Y() <= p.Y() && p.Y() < b.Y():
			// Upward edge, p must be to its left.
			if o == orientation.CounterClockwise {
				crossings++
			}
		case b.Y() <= p.Y() && p.Y() < a.Y():
			// Downward edge, p must be to its right.
			if o == orientation.Clockwise {
				crossings++
			}
		}
	}
	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}

// LocatePointInPolygon applies polygon-with-holes semantics to the rings of
// a polygon: p is covered by the polygon if it is inside or on the exterior
// ring and not strictly inside any hole. Points on a hole boundary are on
// the polygon boundary.
func LocatePointInPolygon(polygon *geom.Polygon, p geom.Coord) (RingSide, error) {
	rings := make([][]float64, 0, polygon.NumLinearRings())
	for i := 0; i < polygon.NumLinearRings(); i++ {
		flatCoords := polygon.LinearRing(i).FlatCoords()
		if len(flatCoords) == 0 {
			continue
		}
		if err := validateRing(polygon.Layout(), flatCoords, i); err != nil {
			return Outside, err
		}
		rings = append(rings, flatCoords)
	}
	return locatePointInRings(polygon.Layout(), rings, p), nil
}

// locatePointInRings classifies p against an exterior ring followed by its
// holes.
func locatePointInRings(layout geom.Layout, rings [][]float64, p geom.Coord) RingSide {
	if len(rings) == 0 {
		return Outside
	}
	side := LocatePointInRing(layout, rings[0], p)
	if side != Inside {
		return side
	}
	for _, hole := range rings[1:] {
		switch LocatePointInRing(layout, hole, p) {
		case Inside:
			return Outside
		case OnBoundary:
			return OnBoundary
		}
	}
	return Inside
}
