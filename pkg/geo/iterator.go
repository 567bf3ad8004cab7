// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geo

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/geodist/pkg/geo/geodist"
	"github.com/twpayne/go-geom"
)

// EmptyBehavior is the behavior to adopt when an empty Geometry is
// encountered.
type EmptyBehavior uint8

const (
	// EmptyBehaviorOmit omits empty geometries from the iteration.
	EmptyBehaviorOmit EmptyBehavior = 0
	// EmptyBehaviorError returns an error if an empty geometry is
	// encountered.
	EmptyBehaviorError EmptyBehavior = 1
)

// GeomTIterator decomposes geom.T objects into individual Point, LineString
// and Polygon objects, flattening collections.
type GeomTIterator struct {
	g             geom.T
	emptyBehavior EmptyBehavior
	// idx is the position of the next element of a multi type or
	// collection.
	idx int
	// subIt iterates the current member of a GeometryCollection.
	subIt *GeomTIterator
}

// NewGeomTIterator returns a new GeomTIterator.
func NewGeomTIterator(g geom.T, emptyBehavior EmptyBehavior) GeomTIterator {
	return GeomTIterator{g: g, emptyBehavior: emptyBehavior}
}

// Next returns the next geometry, and false once the iteration is over.
func (it *GeomTIterator) Next() (geom.T, bool, error) {
	switch t := it.g.(type) {
	case *geom.Point, *geom.LineString, *geom.Polygon:
		if it.idx == 1 {
			return nil, false, nil
		}
		it.idx++
		if t.Empty() {
			if it.emptyBehavior == EmptyBehaviorError {
				return nil, false, geodist.NewEmptyGeometryError()
			}
			return it.Next()
		}
		return t, true, nil
	case *geom.MultiPoint:
		if it.idx == t.NumPoints() {
			return nil, false, nil
		}
		return it.emit(t.Point(it.idx))
	case *geom.MultiLineString:
		if it.idx == t.NumLineStrings() {
			return nil, false, nil
		}
		return it.emit(t.LineString(it.idx))
	case *geom.MultiPolygon:
		if it.idx == t.NumPolygons() {
			return nil, false, nil
		}
		return it.emit(t.Polygon(it.idx))
	case *geom.GeometryCollection:
		for {
			if it.subIt == nil {
				if it.idx == t.NumGeoms() {
					return nil, false, nil
				}
				subIt := NewGeomTIterator(t.Geom(it.idx), it.emptyBehavior)
				it.subIt = &subIt
				it.idx++
			}
			ret, next, err := it.subIt.Next()
			if err != nil {
				return nil, false, err
			}
			if next {
				return ret, true, nil
			}
			it.subIt = nil
		}
	default:
		return nil, false, errors.AssertionFailedf("unknown geom type: %T", t)
	}
}

// emit advances past a member of a multi type, skipping it if empty.
func (it *GeomTIterator) emit(t geom.T) (geom.T, bool, error) {
	it.idx++
	if t.Empty() {
		if it.emptyBehavior == EmptyBehaviorError {
			return nil, false, geodist.NewEmptyGeometryError()
		}
		return it.Next()
	}
	return t, true, nil
}

// Reset rewinds the iterator to the first geometry.
func (it *GeomTIterator) Reset() {
	it.idx = 0
	it.subIt = nil
}
