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

// PointPolygonControlFlowType signals what control flow to follow.
type PointPolygonControlFlowType int

const (
	// PPCFCheckNextPolygon signals that the current point should be checked
	// against the next polygon.
	PPCFCheckNextPolygon PointPolygonControlFlowType = iota
	// PPCFSkipToNextPoint signals that the rest of the checking for the current
	// point can be skipped.
	PPCFSkipToNextPoint
	// PPCFReturnTrue signals that the function should exit early and return true.
	PPCFReturnTrue
)

// PointInPolygonEventListener decides the outcome of a point-in-polygon
// predicate as points are located against polygons.
type PointInPolygonEventListener interface {
	// OnPointIntersectsPolygon is called when a point lies inside or on the
	// boundary of a polygon, strictlyInside telling the two apart.
	OnPointIntersectsPolygon(strictlyInside bool) PointPolygonControlFlowType
	// ExitIfPointDoesNotIntersect returns whether the predicate is false
	// as soon as a point lies outside every polygon.
	ExitIfPointDoesNotIntersect() bool
	// AfterPointPolygonLoops returns the outcome once every point has been
	// located.
	AfterPointPolygonLoops() bool
}

// For Intersects, a single point in a single polygon suffices.
type intersectsPIPEventListener struct{}

func (el *intersectsPIPEventListener) OnPointIntersectsPolygon(
	strictlyInside bool,
) PointPolygonControlFlowType {
	return PPCFReturnTrue
}

func (el *intersectsPIPEventListener) ExitIfPointDoesNotIntersect() bool {
	return false
}

func (el *intersectsPIPEventListener) AfterPointPolygonLoops() bool {
	return false
}

var _ PointInPolygonEventListener = (*intersectsPIPEventListener)(nil)

// For CoveredBy, every point must lie in or on some polygon.
type coveredByPIPEventListener struct {
	intersectsOnce bool
}

func (el *coveredByPIPEventListener) OnPointIntersectsPolygon(
	strictlyInside bool,
) PointPolygonControlFlowType {
	el.intersectsOnce = true
	return PPCFSkipToNextPoint
}

func (el *coveredByPIPEventListener) ExitIfPointDoesNotIntersect() bool {
	return true
}

func (el *coveredByPIPEventListener) AfterPointPolygonLoops() bool {
	return el.intersectsOnce
}

var _ PointInPolygonEventListener = (*coveredByPIPEventListener)(nil)

// For Within, every point must lie in or on some polygon and at least one
// must lie strictly inside.
type withinPIPEventListener struct {
	insideOnce bool
}

func (el *withinPIPEventListener) OnPointIntersectsPolygon(
	strictlyInside bool,
) PointPolygonControlFlowType {
	// A point on a boundary may still be strictly inside a later polygon,
	// which matters until one point has been seen inside.
	if el.insideOnce || strictlyInside {
		el.insideOnce = true
		return PPCFSkipToNextPoint
	}
	return PPCFCheckNextPolygon
}

func (el *withinPIPEventListener) ExitIfPointDoesNotIntersect() bool {
	return true
}

func (el *withinPIPEventListener) AfterPointPolygonLoops() bool {
	return el.insideOnce
}

var _ PointInPolygonEventListener = (*withinPIPEventListener)(nil)

// PointKindIntersectsPolygonKind returns whether a (multi)point
// and a (multi)polygon intersect.
func PointKindIntersectsPolygonKind(pointKind geo.Geometry, polygonKind geo.Geometry) (bool, error) {
	return pointKindRelatesToPolygonKind(pointKind, polygonKind, &intersectsPIPEventListener{})
}

// PointKindCoveredByPolygonKind returns whether a (multi)point
// is covered by a (multi)polygon.
func PointKindCoveredByPolygonKind(pointKind geo.Geometry, polygonKind geo.Geometry) (bool, error) {
	return pointKindRelatesToPolygonKind(pointKind, polygonKind, &coveredByPIPEventListener{})
}

// PointKindWithinPolygonKind returns whether a (multi)point
// is contained within a (multi)polygon.
func PointKindWithinPolygonKind(pointKind geo.Geometry, polygonKind geo.Geometry) (bool, error) {
	return pointKindRelatesToPolygonKind(pointKind, polygonKind, &withinPIPEventListener{})
}

// pointKindRelatesToPolygonKind locates each point against each polygon,
// leaving the outcome to eventListener.
func pointKindRelatesToPolygonKind(
	pointKind geo.Geometry, polygonKind geo.Geometry, eventListener PointInPolygonEventListener,
) (bool, error) {
	if pointKind.SRID() != polygonKind.SRID() {
		return false, geo.NewMismatchingSRIDsError(pointKind.SpatialObject(), polygonKind.SpatialObject())
	}
	switch pointKind.ShapeType() {
	case geopb.ShapeType_Point, geopb.ShapeType_MultiPoint:
	default:
		return false, errors.Newf("first geometry should be a (multi)point, got %s", pointKind.ShapeType())
	}
	switch polygonKind.ShapeType() {
	case geopb.ShapeType_Polygon, geopb.ShapeType_MultiPolygon:
	default:
		return false, errors.Newf("second geometry should be a (multi)polygon, got %s", polygonKind.ShapeType())
	}

	pointKindBaseT, err := pointKind.AsGeomT()
	if err != nil {
		return false, err
	}
	polygonKindBaseT, err := polygonKind.AsGeomT()
	if err != nil {
		return false, err
	}
	pointKindIterator := geo.NewGeomTIterator(pointKindBaseT, geo.EmptyBehaviorOmit)
	polygonKindIterator := geo.NewGeomTIterator(polygonKindBaseT, geo.EmptyBehaviorOmit)

pointOuterLoop:
	for {
		point, hasPoint, err := pointKindIterator.Next()
		if err != nil {
			return false, err
		}
		if !hasPoint {
			break
		}
		coord := point.(*geom.Point).Coords()
		polygonKindIterator.Reset()
		curIntersects := false
		for {
			polygon, hasPolygon, err := polygonKindIterator.Next()
			if err != nil {
				return false, err
			}
			if !hasPolygon {
				break
			}
			side, err := geodist.LocatePointInPolygon(polygon.(*geom.Polygon), coord)
			if err != nil {
				return false, err
			}
			if side == geodist.Outside {
				continue
			}
			curIntersects = true
			switch eventListener.OnPointIntersectsPolygon(side == geodist.Inside) {
			case PPCFCheckNextPolygon:
			case PPCFSkipToNextPoint:
				continue pointOuterLoop
			case PPCFReturnTrue:
				return true, nil
			}
		}
		if !curIntersects && eventListener.ExitIfPointDoesNotIntersect() {
			return false, nil
		}
	}
	return eventListener.AfterPointPolygonLoops(), nil
}
