// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geodist

import (
	"github.com/cockroachdb/redact"
	"github.com/twpayne/go-geom"
)

// Location identifies a point of a geometry precisely enough to rebuild its
// coordinate: a component, a segment within it and a parametric position
// along that segment.
type Location struct {
	Component *Component
	// SegmentIndex is the index of the segment within a linear component,
	// and 0 for a point component.
	SegmentIndex int
	// Position is the parametric position along the segment, 0 and 1
	// denoting its start and end vertices.
	Position float64
	// insideArea is set for witnesses found by point location inside a
	// polygon. Such locations are attached to the polygon's exterior ring
	// but carry their own coordinate.
	insideArea bool
	coord      geom.Coord
}

var _ redact.SafeFormatter = Location{}

func makeVertexLocation(c *Component) Location {
	return Location{Component: c}
}

func makeSegmentLocation(c *Component, segIdx int, pos float64) Location {
	return Location{Component: c, SegmentIndex: segIdx, Position: pos}
}

func makeInsideAreaLocation(exterior *Component, coord geom.Coord) Location {
	return Location{Component: exterior, insideArea: true, coord: coord}
}

// InsideArea returns whether the location is a point in the interior of a
// polygon rather than a point on one of its components.
func (l Location) InsideArea() bool {
	return l.insideArea
}

// Coord resolves the location into a coordinate.
func (l Location) Coord() geom.Coord {
	if l.insideArea {
		return l.coord
	}
	c := l.Component
	if c.Kind == PointComponent {
		return c.Coord(0)
	}
	return PointAlongSegment(c.Coord(l.SegmentIndex), c.Coord(l.SegmentIndex+1), l.Position)
}

// PointAlongSegment returns the point at parametric position pos along the
// segment [a, b]. The vertices themselves are returned unchanged at 0 and
// 1; other positions are interpolated on every ordinate.
func PointAlongSegment(a, b geom.Coord, pos float64) geom.Coord {
	switch pos {
	case 0:
		return a
	case 1:
		return b
	}
	return interpolateCoord(a, b, pos)
}

// interpolateCoord returns a + frac*(b-a) on each ordinate.
func interpolateCoord(a, b geom.Coord, frac float64) geom.Coord {
	ret := make(geom.Coord, len(a))
	for i := range a {
		ret[i] = a[i] + (b[i]-a[i])*frac
	}
	return ret
}

// SafeFormat implements the redact.SafeFormatter interface.
func (l Location) SafeFormat(w redact.SafePrinter, _ rune) {
	if l.insideArea {
		w.Printf("%s[%d] inside", redact.Safe(l.Component.Side), redact.Safe(l.Component.Index))
		return
	}
	w.Printf("%s[%d] seg %d @ %v",
		redact.Safe(l.Component.Side), redact.Safe(l.Component.Index),
		redact.Safe(l.SegmentIndex), redact.Safe(l.Position))
}

func (l Location) String() string {
	return redact.StringWithoutMarkers(l)
}
