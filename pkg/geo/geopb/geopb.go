// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package geopb contains the value types shared by the geo packages: the
// encodings a spatial object travels in and the metadata kept next to it.
package geopb

import "fmt"

// SRID is a Spatial Reference Identifier. 0 means the object is not
// attached to a known reference system.
type SRID int32

// UnknownSRID is the SRID of objects without a reference system.
const UnknownSRID SRID = 0

// WKT is the Well Known Text form of a spatial object.
type WKT string

// EWKT is the Extended Well Known Text form of a spatial object, which is
// WKT with an optional SRID=...; prefix.
type EWKT string

// WKB is the Well Known Bytes form of a spatial object.
type WKB []byte

// EWKB is the Extended Well Known Bytes form of a spatial object. It is the
// form spatial objects are stored in.
type EWKB []byte

// ShapeType is the type of a spatial object.
type ShapeType int32

// ShapeType values.
const (
	ShapeType_Unset ShapeType = iota
	ShapeType_Point
	ShapeType_LineString
	ShapeType_Polygon
	ShapeType_MultiPoint
	ShapeType_MultiLineString
	ShapeType_MultiPolygon
	ShapeType_Geometry
	ShapeType_GeometryCollection
)

var shapeTypeNames = map[ShapeType]string{
	ShapeType_Unset:              "Unset",
	ShapeType_Point:              "Point",
	ShapeType_LineString:         "LineString",
	ShapeType_Polygon:            "Polygon",
	ShapeType_MultiPoint:         "MultiPoint",
	ShapeType_MultiLineString:    "MultiLineString",
	ShapeType_MultiPolygon:       "MultiPolygon",
	ShapeType_Geometry:           "Geometry",
	ShapeType_GeometryCollection: "GeometryCollection",
}

func (s ShapeType) String() string {
	if name, ok := shapeTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ShapeType(%d)", int32(s))
}

// SpatialObject is a spatial object in its stored form.
type SpatialObject struct {
	EWKB      EWKB
	SRID      SRID
	ShapeType ShapeType
	// BoundingBox is nil for empty objects.
	BoundingBox *BoundingBox
}

// BoundingBox is an axis aligned box in the units of the object's SRID.
type BoundingBox struct {
	LoX float64
	HiX float64
	LoY float64
	HiY float64
}
