// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomfn

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo"
	"github.com/cockroachdb/geodist/pkg/geo/geodist"
	"github.com/cockroachdb/geodist/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
)

// LineInterpolatePoints returns one or more points along the given
// LineString which are at an integral multiples of given fraction of
// LineString's total length. When repeat is set to false, it returns
// the first point.
func LineInterpolatePoints(g geo.Geometry, fraction float64, repeat bool) (geo.Geometry, error) {
	if fraction < 0 || fraction > 1 {
		return geo.Geometry{}, errors.Newf("fraction %f should be within [0 1] range", fraction)
	}
	lineString, err := asLineString(g)
	if err != nil {
		return geo.Geometry{}, err
	}
	if lineString.Empty() {
		return geo.MakeGeometryFromGeomT(geom.NewPointEmpty(geom.XY).SetSRID(lineString.SRID()))
	}

	length := lineString.Length()
	// A fraction above 0.5, equal to 0 or without repeat yields one point.
	if !repeat || fraction > 0.5 || fraction == 0 {
		coord := interpolateAlongLineString(lineString, fraction*length)
		return geo.MakeGeometryFromGeomT(
			geom.NewPointFlat(lineString.Layout(), coord).SetSRID(lineString.SRID()),
		)
	}

	numPoints := int(1 / fraction)
	points := geom.NewMultiPoint(lineString.Layout()).SetSRID(lineString.SRID())
	for i := 1; i <= numPoints; i++ {
		coord := interpolateAlongLineString(lineString, float64(i)*fraction*length)
		if err := points.Push(geom.NewPointFlat(lineString.Layout(), coord)); err != nil {
			return geo.Geometry{}, err
		}
	}
	return geo.MakeGeometryFromGeomT(points)
}

// LineLocatePoint returns the fraction of the length of the LineString at
// which the point of the line nearest to the given point lies.
func LineLocatePoint(line geo.Geometry, point geo.Geometry) (float64, error) {
	lineString, err := asLineString(line)
	if err != nil {
		return 0, err
	}
	if point.ShapeType() != geopb.ShapeType_Point {
		return 0, errors.Newf("second parameter has to be of type Point, got %s", point.ShapeType())
	}
	res, err := computeDistance(line, point)
	if err != nil {
		return 0, err
	}
	length := lineString.Length()
	if length == 0 {
		return 0, nil
	}

	loc := res.Locations[0]
	if loc.Component.Kind != geodist.LinearComponent {
		return 0, nil
	}
	traveled := 0.0
	for i := 0; i < loc.SegmentIndex; i++ {
		traveled += geodist.PointDistance(loc.Component.Coord(i), loc.Component.Coord(i+1))
	}
	traveled += loc.Position * geodist.PointDistance(
		loc.Component.Coord(loc.SegmentIndex), loc.Component.Coord(loc.SegmentIndex+1),
	)
	return traveled / length, nil
}

func asLineString(g geo.Geometry) (*geom.LineString, error) {
	t, err := g.AsGeomT()
	if err != nil {
		return nil, err
	}
	lineString, ok := t.(*geom.LineString)
	if !ok {
		return nil, errors.Newf("geometry %s should be LineString", g.ShapeType())
	}
	return lineString, nil
}

// interpolateAlongLineString returns the point lying the given planar
// distance along the line, clamped to its last vertex.
func interpolateAlongLineString(lineString *geom.LineString, distance float64) geom.Coord {
	n := lineString.NumCoords()
	traveled := 0.0
	for i := 0; i+1 < n; i++ {
		a, b := lineString.Coord(i), lineString.Coord(i+1)
		segLength := geodist.PointDistance(a, b)
		if segLength > 0 && traveled+segLength >= distance {
			return geodist.PointAlongSegment(a, b, (distance-traveled)/segLength)
		}
		traveled += segLength
	}
	return lineString.Coord(n - 1)
}
