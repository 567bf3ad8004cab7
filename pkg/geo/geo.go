// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geo contains the Geometry type, a planar spatial object kept in
// its EWKB form, and the conversions between it and the text and binary
// formats spatial objects are exchanged in.
//
// Subpackages are available that operate on these types:
//   - geo/geodist computes minimum distances and nearest points.
//   - geo/geomfn implements the distance and point-in-polygon functions over
//     Geometry.
package geo

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/wkbcommon"
)

// DefaultEWKBEncodingFormat is the byte order spatial objects are stored in.
var DefaultEWKBEncodingFormat binary.ByteOrder = binary.LittleEndian

// wkbOptions encodes empty points as NaN coordinates in plain WKB, matching
// what the ewkb package always does.
var wkbOptions = []wkbcommon.WKBOption{
	wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN),
}

// Geometry is a planar spatial object.
type Geometry struct {
	spatialObject geopb.SpatialObject
}

// MakeGeometry returns a Geometry from a SpatialObject, checking that its
// EWKB decodes and matches the rest of the object.
func MakeGeometry(spatialObject geopb.SpatialObject) (Geometry, error) {
	t, err := ewkb.Unmarshal(spatialObject.EWKB)
	if err != nil {
		return Geometry{}, errors.Wrap(err, "invalid EWKB")
	}
	if geopb.SRID(t.SRID()) != spatialObject.SRID {
		return Geometry{}, errors.AssertionFailedf(
			"EWKB SRID %d does not match spatial object SRID %d", t.SRID(), spatialObject.SRID)
	}
	return Geometry{spatialObject: spatialObject}, nil
}

// MakeGeometryUnsafe returns a Geometry from a SpatialObject without
// validating it.
func MakeGeometryUnsafe(spatialObject geopb.SpatialObject) Geometry {
	return Geometry{spatialObject: spatialObject}
}

// MakeGeometryFromGeomT returns a Geometry from a geom.T.
func MakeGeometryFromGeomT(g geom.T) (Geometry, error) {
	spatialObject, err := spatialObjectFromGeomT(g)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{spatialObject: spatialObject}, nil
}

// MustMakeGeometryFromGeomT is MakeGeometryFromGeomT that panics on error.
func MustMakeGeometryFromGeomT(g geom.T) Geometry {
	ret, err := MakeGeometryFromGeomT(g)
	if err != nil {
		panic(err)
	}
	return ret
}

// AsGeomT decodes the Geometry into a geom.T.
func (g Geometry) AsGeomT() (geom.T, error) {
	return ewkb.Unmarshal(g.spatialObject.EWKB)
}

// EWKB returns the EWKB form of the Geometry.
func (g Geometry) EWKB() geopb.EWKB {
	return g.spatialObject.EWKB
}

// SpatialObject returns the Geometry in its stored form.
func (g Geometry) SpatialObject() geopb.SpatialObject {
	return g.spatialObject
}

// SRID returns the SRID of the Geometry.
func (g Geometry) SRID() geopb.SRID {
	return g.spatialObject.SRID
}

// ShapeType returns the shape type of the Geometry.
func (g Geometry) ShapeType() geopb.ShapeType {
	return g.spatialObject.ShapeType
}

// Empty returns whether the Geometry has no coordinates.
func (g Geometry) Empty() bool {
	return g.spatialObject.BoundingBox == nil
}

// BoundingBox returns the bounding box of the Geometry, or nil if it is
// empty.
func (g Geometry) BoundingBox() *geopb.BoundingBox {
	return g.spatialObject.BoundingBox
}

// spatialObjectFromGeomT encodes t along with the metadata kept next to it.
func spatialObjectFromGeomT(t geom.T) (geopb.SpatialObject, error) {
	shapeType, err := shapeTypeFromGeomT(t)
	if err != nil {
		return geopb.SpatialObject{}, err
	}
	ret, err := ewkb.Marshal(t, DefaultEWKBEncodingFormat)
	if err != nil {
		return geopb.SpatialObject{}, err
	}
	return geopb.SpatialObject{
		EWKB:        geopb.EWKB(ret),
		SRID:        geopb.SRID(t.SRID()),
		ShapeType:   shapeType,
		BoundingBox: BoundingBoxFromGeomT(t),
	}, nil
}

func shapeTypeFromGeomT(t geom.T) (geopb.ShapeType, error) {
	switch t.(type) {
	case *geom.Point:
		return geopb.ShapeType_Point, nil
	case *geom.LineString:
		return geopb.ShapeType_LineString, nil
	case *geom.Polygon:
		return geopb.ShapeType_Polygon, nil
	case *geom.MultiPoint:
		return geopb.ShapeType_MultiPoint, nil
	case *geom.MultiLineString:
		return geopb.ShapeType_MultiLineString, nil
	case *geom.MultiPolygon:
		return geopb.ShapeType_MultiPolygon, nil
	case *geom.GeometryCollection:
		return geopb.ShapeType_GeometryCollection, nil
	default:
		return geopb.ShapeType_Unset, errors.Newf("unknown shape: %T", t)
	}
}

// adjustGeomTSRID sets the SRID of t, which geom.T does not expose as a
// method.
func adjustGeomTSRID(t geom.T, srid geopb.SRID) error {
	switch t := t.(type) {
	case *geom.Point:
		t.SetSRID(int(srid))
	case *geom.LineString:
		t.SetSRID(int(srid))
	case *geom.Polygon:
		t.SetSRID(int(srid))
	case *geom.GeometryCollection:
		t.SetSRID(int(srid))
	case *geom.MultiPoint:
		t.SetSRID(int(srid))
	case *geom.MultiLineString:
		t.SetSRID(int(srid))
	case *geom.MultiPolygon:
		t.SetSRID(int(srid))
	default:
		return errors.AssertionFailedf("unknown geom type: %T", t)
	}
	return nil
}
