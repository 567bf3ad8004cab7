// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geodist computes the minimum planar distance between two
// geometries along with a pair of points, one on each geometry, that are
// exactly that far apart.
//
// Geometries are broken down into points and chains of segments, and every
// pair of such components is measured after a cheap point-in-polygon check
// has had a chance to prove that the geometries overlap. The search stops
// as soon as a distance of zero, or a requested threshold, is reached.
package geodist

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Result is the outcome of a distance query.
type Result struct {
	// Distance is the minimum distance between the two geometries.
	Distance float64
	// Locations holds a witness on A and a witness on B whose coordinates
	// are Distance apart.
	Locations [2]Location
}

// NearestPoints resolves the witnesses of the result into coordinates.
func (r Result) NearestPoints() [2]geom.Coord {
	return [2]geom.Coord{r.Locations[0].Coord(), r.Locations[1].Coord()}
}

// calculator holds the state of a single query: the components of both
// geometries and the best distance found so far. It is not reused.
type calculator struct {
	a, b []*Component
	// terminateDistance stops the search once the best distance drops to
	// or below it.
	terminateDistance float64

	minDistance  float64
	minLocations [2]Location
}

func newCalculator(a, b geom.T, terminateDistance float64) (*calculator, error) {
	componentsA, err := Decompose(a, SideA)
	if err != nil {
		return nil, err
	}
	componentsB, err := Decompose(b, SideB)
	if err != nil {
		return nil, err
	}
	if len(componentsA) == 0 || len(componentsB) == 0 {
		return nil, NewEmptyGeometryError()
	}
	return &calculator{
		a:                 componentsA,
		b:                 componentsB,
		terminateDistance: terminateDistance,
		minDistance:       math.Inf(1),
	}, nil
}

// Compute returns the minimum distance between a and b together with the
// locations realizing it.
func Compute(a, b geom.T) (Result, error) {
	c, err := newCalculator(a, b, 0 /* terminateDistance */)
	if err != nil {
		return Result{}, err
	}
	c.run()
	return c.result(), nil
}

// Distance returns the minimum distance between a and b.
func Distance(a, b geom.T) (float64, error) {
	r, err := Compute(a, b)
	if err != nil {
		return 0, err
	}
	return r.Distance, nil
}

// NearestPoints returns a point of a and a point of b which are at the
// minimum distance of each other.
func NearestPoints(a, b geom.T) ([2]geom.Coord, error) {
	r, err := Compute(a, b)
	if err != nil {
		return [2]geom.Coord{}, err
	}
	return r.NearestPoints(), nil
}

// WithinDistance returns whether a and b are at most threshold apart. The
// search stops at the first pair of components found within the threshold.
func WithinDistance(a, b geom.T, threshold float64) (bool, error) {
	c, err := newCalculator(a, b, threshold)
	if err != nil {
		return false, err
	}
	c.run()
	return c.minDistance <= threshold, nil
}

func (c *calculator) result() Result {
	return Result{Distance: c.minDistance, Locations: c.minLocations}
}

func (c *calculator) done() bool {
	return c.minDistance <= c.terminateDistance
}

// update records a candidate if it is strictly closer than the best one so
// far, which keeps the first of several equally close pairs.
func (c *calculator) update(dist float64, locA, locB Location) {
	if dist < c.minDistance {
		c.minDistance = dist
		c.minLocations = [2]Location{locA, locB}
	}
}

func (c *calculator) run() {
	if c.containmentDistance() {
		return
	}
	for _, ca := range c.a {
		for _, cb := range c.b {
			c.computeComponentDistance(ca, cb)
			if c.done() {
				return
			}
		}
	}
}

func (c *calculator) computeComponentDistance(ca, cb *Component) {
	switch {
	case ca.Kind == PointComponent && cb.Kind == PointComponent:
		c.update(PointDistance(ca.Coord(0), cb.Coord(0)), makeVertexLocation(ca), makeVertexLocation(cb))
	case ca.Kind == PointComponent:
		c.computePointLineDistance(ca, cb, false /* swapped */)
	case cb.Kind == PointComponent:
		c.computePointLineDistance(cb, ca, true /* swapped */)
	default:
		c.computeLineLineDistance(ca, cb)
	}
}

// computePointLineDistance measures a point component against every
// segment of a linear component. swapped is set when the point belongs to
// B.
func (c *calculator) computePointLineDistance(point, line *Component, swapped bool) {
	p := point.Coord(0)
	for i := 0; i < line.NumSegments(); i++ {
		dist, pos := PointToSegmentDistance(p, line.Coord(i), line.Coord(i+1))
		if swapped {
			c.update(dist, makeSegmentLocation(line, i, pos), makeVertexLocation(point))
		} else {
			c.update(dist, makeVertexLocation(point), makeSegmentLocation(line, i, pos))
		}
		if c.done() {
			return
		}
	}
}

func (c *calculator) computeLineLineDistance(la, lb *Component) {
	if rectDistance(la.Bounds(), lb.Bounds()) > c.minDistance {
		return
	}
	for i := 0; i < la.NumSegments(); i++ {
		a1, a2 := la.Coord(i), la.Coord(i+1)
		for j := 0; j < lb.NumSegments(); j++ {
			dist, posA, posB := SegmentToSegmentDistance(a1, a2, lb.Coord(j), lb.Coord(j+1))
			c.update(dist, makeSegmentLocation(la, i, posA), makeSegmentLocation(lb, j, posB))
			if c.done() {
				return
			}
		}
	}
}
