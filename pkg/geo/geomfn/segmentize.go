// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomfn

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo"
	"github.com/cockroachdb/geodist/pkg/geo/geodist"
	"github.com/twpayne/go-geom"
)

// maxSegmentizePoints bounds the number of points a single segment is split
// into.
const maxSegmentizePoints = 1 << 16

// Segmentize return modified Geometry having no segment longer
// that given maximum segment length.
// This works by inserting the extra points in such a manner that
// minimum number of new segments with equal length is created,
// between given two-points such that each segment has length less
// than or equal to given maximum segment length.
func Segmentize(g geo.Geometry, segmentMaxLength float64) (geo.Geometry, error) {
	if math.IsNaN(segmentMaxLength) || math.IsInf(segmentMaxLength, 1 /* sign */) {
		return g, nil
	}
	geometry, err := g.AsGeomT()
	if err != nil {
		return geo.Geometry{}, err
	}
	switch geometry.(type) {
	case *geom.Point, *geom.MultiPoint:
		return g, nil
	}
	if segmentMaxLength <= 0 {
		return geo.Geometry{}, errors.Newf("maximum segment length must be positive")
	}
	segGeometry, err := segmentizeGeomT(geometry, segmentMaxLength)
	if err != nil {
		return geo.Geometry{}, err
	}
	return geo.MakeGeometryFromGeomT(segGeometry)
}

func segmentizeGeomT(geometry geom.T, segmentMaxLength float64) (geom.T, error) {
	layout := geometry.Layout()
	switch geometry := geometry.(type) {
	case *geom.Point, *geom.MultiPoint:
		return geometry, nil
	case *geom.LineString:
		flatCoords, _, err := segmentizeFlatCoords(layout, geometry.FlatCoords(), []int{len(geometry.FlatCoords())}, segmentMaxLength)
		if err != nil {
			return nil, err
		}
		return geom.NewLineStringFlat(layout, flatCoords).SetSRID(geometry.SRID()), nil
	case *geom.MultiLineString:
		flatCoords, ends, err := segmentizeFlatCoords(layout, geometry.FlatCoords(), geometry.Ends(), segmentMaxLength)
		if err != nil {
			return nil, err
		}
		return geom.NewMultiLineStringFlat(layout, flatCoords, ends).SetSRID(geometry.SRID()), nil
	case *geom.Polygon:
		flatCoords, ends, err := segmentizeFlatCoords(layout, geometry.FlatCoords(), geometry.Ends(), segmentMaxLength)
		if err != nil {
			return nil, err
		}
		return geom.NewPolygonFlat(layout, flatCoords, ends).SetSRID(geometry.SRID()), nil
	case *geom.MultiPolygon:
		// Each polygon is segmentized on its own so the ends can be nested
		// again.
		ret := geom.NewMultiPolygon(layout).SetSRID(geometry.SRID())
		for i := 0; i < geometry.NumPolygons(); i++ {
			polygon, err := segmentizeGeomT(geometry.Polygon(i), segmentMaxLength)
			if err != nil {
				return nil, err
			}
			if err := ret.Push(polygon.(*geom.Polygon)); err != nil {
				return nil, err
			}
		}
		return ret, nil
	case *geom.GeometryCollection:
		ret := geom.NewGeometryCollection().SetSRID(geometry.SRID())
		for i := 0; i < geometry.NumGeoms(); i++ {
			subGeometry, err := segmentizeGeomT(geometry.Geom(i), segmentMaxLength)
			if err != nil {
				return nil, err
			}
			if err := ret.Push(subGeometry); err != nil {
				return nil, err
			}
		}
		return ret, nil
	default:
		return nil, errors.AssertionFailedf("unknown geometry type: %T", geometry)
	}
}

// segmentizeFlatCoords segmentizes each of the coordinate sequences
// delimited by ends, returning the new flat coordinates and ends.
func segmentizeFlatCoords(
	layout geom.Layout, flatCoords []float64, ends []int, segmentMaxLength float64,
) ([]float64, []int, error) {
	stride := layout.Stride()
	newFlatCoords := make([]float64, 0, len(flatCoords))
	newEnds := make([]int, 0, len(ends))
	start := 0
	for _, end := range ends {
		for i := start; i < end; i += stride {
			a := geom.Coord(flatCoords[i : i+stride])
			if i+stride >= end {
				newFlatCoords = append(newFlatCoords, a...)
				break
			}
			b := geom.Coord(flatCoords[i+stride : i+2*stride])
			segmentCoords, err := segmentizeCoords(a, b, segmentMaxLength)
			if err != nil {
				return nil, nil, err
			}
			newFlatCoords = append(newFlatCoords, segmentCoords...)
		}
		newEnds = append(newEnds, len(newFlatCoords))
		start = end
	}
	return newFlatCoords, newEnds, nil
}

// segmentizeCoords inserts multiple points between given two coordinates and
// return resultant point as flat []float64. Points are inserted in such a
// way that they create minimum number segments of equal length such that each
// segment has a length less than or equal to given maximum segment length.
// Note: List of points does not consist of end point.
func segmentizeCoords(a geom.Coord, b geom.Coord, maxSegmentLength float64) ([]float64, error) {
	// Only 2D distance is considered for determining number of segments.
	numberOfSegments := math.Ceil(geodist.PointDistance(a, b) / maxSegmentLength)
	if numberOfSegments > maxSegmentizePoints {
		return nil, errors.WithHintf(
			errors.Newf(
				"attempting to segmentize into too many coordinates; need %v points between %v and %v, max %d",
				numberOfSegments, a, b, maxSegmentizePoints,
			),
			"increase the maximum segment length",
		)
	}

	n := int(numberOfSegments)
	ret := make([]float64, 0, len(a)*max(n, 1))
	ret = append(ret, a...)
	for i := 1; i < n; i++ {
		ret = append(ret, geodist.PointAlongSegment(a, b, float64(i)/float64(n))...)
	}
	return ret, nil
}
