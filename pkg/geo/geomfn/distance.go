// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geomfn

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo"
	"github.com/cockroachdb/geodist/pkg/geo/geodist"
	"github.com/twpayne/go-geom"
)

// MinDistance returns the minimum distance between geometries A and B.
// It returns a geodist.EmptyGeometryError if either A or B is empty.
func MinDistance(a geo.Geometry, b geo.Geometry) (float64, error) {
	aGeomT, bGeomT, err := asGeomTPair(a, b)
	if err != nil {
		return 0, err
	}
	return geodist.Distance(aGeomT, bGeomT)
}

// ClosestPoint returns the point of A nearest to B.
func ClosestPoint(a geo.Geometry, b geo.Geometry) (geo.Geometry, error) {
	res, err := computeDistance(a, b)
	if err != nil {
		return geo.Geometry{}, err
	}
	layout, coord := locationCoord(res.Locations[0])
	return geo.MakeGeometryFromGeomT(
		geom.NewPointFlat(layout, coord).SetSRID(int(a.SRID())),
	)
}

// ShortestLineString returns the two-point LineString going from the point
// of A nearest to B to the point of B nearest to A.
func ShortestLineString(a geo.Geometry, b geo.Geometry) (geo.Geometry, error) {
	res, err := computeDistance(a, b)
	if err != nil {
		return geo.Geometry{}, err
	}
	layoutA, coordA := locationCoord(res.Locations[0])
	layoutB, coordB := locationCoord(res.Locations[1])
	layout := layoutA
	if layoutA != layoutB {
		layout = geom.XY
		coordA, coordB = coordA[:2], coordB[:2]
	}
	flatCoords := make([]float64, 0, 2*layout.Stride())
	flatCoords = append(flatCoords, coordA...)
	flatCoords = append(flatCoords, coordB...)
	return geo.MakeGeometryFromGeomT(
		geom.NewLineStringFlat(layout, flatCoords).SetSRID(int(a.SRID())),
	)
}

// DWithin returns whether A and B are within the given distance of each
// other.
func DWithin(a geo.Geometry, b geo.Geometry, d float64) (bool, error) {
	if a.SRID() != b.SRID() {
		return false, geo.NewMismatchingSRIDsError(a.SpatialObject(), b.SpatialObject())
	}
	if d < 0 {
		return false, errors.Newf("dwithin distance cannot be less than zero")
	}
	if a.Empty() || b.Empty() {
		return false, geodist.NewEmptyGeometryError()
	}
	if !a.BoundingBox().Buffer(d).Intersects(b.BoundingBox()) {
		return false, nil
	}
	aGeomT, bGeomT, err := asGeomTPair(a, b)
	if err != nil {
		return false, err
	}
	return geodist.WithinDistance(aGeomT, bGeomT, d)
}

func computeDistance(a geo.Geometry, b geo.Geometry) (geodist.Result, error) {
	aGeomT, bGeomT, err := asGeomTPair(a, b)
	if err != nil {
		return geodist.Result{}, err
	}
	return geodist.Compute(aGeomT, bGeomT)
}

// asGeomTPair decodes two geometries which must share an SRID.
func asGeomTPair(a geo.Geometry, b geo.Geometry) (geom.T, geom.T, error) {
	if a.SRID() != b.SRID() {
		return nil, nil, geo.NewMismatchingSRIDsError(a.SpatialObject(), b.SpatialObject())
	}
	aGeomT, err := a.AsGeomT()
	if err != nil {
		return nil, nil, err
	}
	bGeomT, err := b.AsGeomT()
	if err != nil {
		return nil, nil, err
	}
	return aGeomT, bGeomT, nil
}

// locationCoord resolves a witness along with a layout matching its
// coordinate. A witness found inside an area carries the coordinate of the
// other geometry, whose layout may differ; it is then reduced to XY.
func locationCoord(loc geodist.Location) (geom.Layout, geom.Coord) {
	layout := loc.Component.Layout()
	coord := loc.Coord()
	if len(coord) != layout.Stride() {
		return geom.XY, coord[:2]
	}
	return layout, coord
}
