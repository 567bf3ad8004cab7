// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"github.com/cockroachdb/geodist/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
)

// BoundingBoxFromGeomT returns the planar bounding box of t, or nil if t is
// empty.
func BoundingBoxFromGeomT(t geom.T) *geopb.BoundingBox {
	if t.Empty() {
		return nil
	}
	bbox := geopb.NewBoundingBox()
	extendBoundingBox(bbox, t)
	if bbox.IsEmpty() {
		return nil
	}
	return bbox
}

func extendBoundingBox(bbox *geopb.BoundingBox, t geom.T) {
	if gc, ok := t.(*geom.GeometryCollection); ok {
		for _, sub := range gc.Geoms() {
			extendBoundingBox(bbox, sub)
		}
		return
	}
	if t.Empty() {
		return
	}
	flatCoords := t.FlatCoords()
	stride := t.Stride()
	for i := 0; i+1 < len(flatCoords); i += stride {
		bbox.Update(flatCoords[i], flatCoords[i+1])
	}
}
