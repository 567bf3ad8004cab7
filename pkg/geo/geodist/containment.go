// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geodist

// polygonRings groups the areal components of one polygon, exterior first.
type polygonRings struct {
	exterior *Component
	rings    [][]float64
}

// polygonsOf gathers the polygons of a decomposed geometry, in document
// order.
func polygonsOf(components []*Component) []polygonRings {
	var polygons []polygonRings
	for _, c := range components {
		if !c.Areal {
			continue
		}
		if c.Polygon == len(polygons) {
			polygons = append(polygons, polygonRings{exterior: c})
		}
		p := &polygons[c.Polygon]
		p.rings = append(p.rings, c.flatCoords)
	}
	return polygons
}

// representativeCoordComponent returns the component whose first
// coordinate stands in for the whole geometry in containment checks.
func representativeCoordComponent(components []*Component) *Component {
	if len(components) == 0 {
		return nil
	}
	return components[0]
}

// containmentDistance checks whether a representative point of either
// geometry lies in an area of the other one, in which case the distance is
// 0. It reports whether it found such a point.
//
// Only one point per geometry is tested, so a geometry whose first part is
// outside the other one while a later part lies within an area is left to
// the component search, which only measures boundaries.
func (c *calculator) containmentDistance() bool {
	if c.locateInPolygons(c.a, c.b, false /* swapped */) {
		return true
	}
	return c.locateInPolygons(c.b, c.a, true /* swapped */)
}

func (c *calculator) locateInPolygons(areal, other []*Component, swapped bool) bool {
	polygons := polygonsOf(areal)
	if len(polygons) == 0 {
		return false
	}
	pointComponent := representativeCoordComponent(other)
	if pointComponent == nil {
		return false
	}
	pt := pointComponent.Coord(0)
	for _, polygon := range polygons {
		if locatePointInRings(polygon.exterior.layout, polygon.rings, pt) == Outside {
			continue
		}
		inPolygon := makeInsideAreaLocation(polygon.exterior, pt)
		atPoint := makeVertexLocation(pointComponent)
		if swapped {
			c.update(0, atPoint, inPolygon)
		} else {
			c.update(0, inPolygon, atPoint)
		}
		return true
	}
	return false
}
