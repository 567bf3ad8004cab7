// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package geodist

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
)

// minRingCoords is the smallest number of coordinates of a closed ring.
const minRingCoords = 4

// Side identifies which input of a distance query a component belongs to.
type Side int

const (
	// SideA is the first geometry of a query.
	SideA Side = iota
	// SideB is the second geometry of a query.
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// ComponentKind is the kind of an elemental piece of a geometry.
type ComponentKind int

const (
	// PointComponent is a single coordinate.
	PointComponent ComponentKind = iota
	// LinearComponent is a chain of at least two coordinates.
	LinearComponent
)

// Component is an elemental piece of a geometry used for distance search:
// either a single point or a chain of segments.
type Component struct {
	Kind ComponentKind
	Side Side
	// Index is the position of the component in the document order of the
	// geometry it came from.
	Index int
	// Areal is set for polygon rings.
	Areal bool
	// Polygon is the ordinal of the owning polygon within the geometry,
	// or -1 if the component is not areal.
	Polygon int
	// Ring is the ring ordinal within the owning polygon, 0 being the
	// exterior ring.
	Ring int

	layout     geom.Layout
	flatCoords []float64
	bounds     r2.Rect
}

// NumCoords returns the number of coordinates of the component.
func (c *Component) NumCoords() int {
	return len(c.flatCoords) / c.layout.Stride()
}

// NumSegments returns the number of segments of a linear component, and 0
// for a point component.
func (c *Component) NumSegments() int {
	if c.Kind == PointComponent {
		return 0
	}
	return c.NumCoords() - 1
}

// Coord returns the i-th coordinate of the component.
func (c *Component) Coord(i int) geom.Coord {
	stride := c.layout.Stride()
	return geom.Coord(c.flatCoords[i*stride : (i+1)*stride])
}

// Layout returns the coordinate layout of the component.
func (c *Component) Layout() geom.Layout {
	return c.layout
}

// Bounds returns the X/Y bounding rectangle of the component.
func (c *Component) Bounds() r2.Rect {
	return c.bounds
}

// decomposer accumulates components while walking a geometry.
type decomposer struct {
	side       Side
	components []*Component
	polygons   int
}

// Decompose walks g in document order and returns its elemental
// components. Empty parts contribute nothing, so an empty geometry yields
// no components.
func Decompose(g geom.T, side Side) ([]*Component, error) {
	d := decomposer{side: side}
	if err := d.walk(g); err != nil {
		return nil, err
	}
	return d.components, nil
}

func (d *decomposer) walk(g geom.T) error {
	switch g := g.(type) {
	case *geom.Point:
		d.addPoint(g.Layout(), g.FlatCoords())
	case *geom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			p := g.Point(i)
			d.addPoint(p.Layout(), p.FlatCoords())
		}
	case *geom.LineString:
		d.addLine(g.Layout(), g.FlatCoords())
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			ls := g.LineString(i)
			d.addLine(ls.Layout(), ls.FlatCoords())
		}
	case *geom.LinearRing:
		if len(g.FlatCoords()) == 0 {
			return nil
		}
		if err := validateRing(g.Layout(), g.FlatCoords(), 0 /* ringIdx */); err != nil {
			return err
		}
		d.addLine(g.Layout(), g.FlatCoords())
	case *geom.Polygon:
		return d.addPolygon(g)
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			if err := d.addPolygon(g.Polygon(i)); err != nil {
				return err
			}
		}
	case *geom.GeometryCollection:
		for _, child := range g.Geoms() {
			if err := d.walk(child); err != nil {
				return err
			}
		}
	default:
		return errors.AssertionFailedf("unknown geometry type: %T", g)
	}
	return nil
}

func (d *decomposer) addPoint(layout geom.Layout, flatCoords []float64) {
	if len(flatCoords) == 0 {
		return
	}
	d.add(&Component{Kind: PointComponent, Polygon: -1, layout: layout, flatCoords: flatCoords})
}

// addLine adds a linear component. A line reduced to a single coordinate
// degrades into a point.
func (d *decomposer) addLine(layout geom.Layout, flatCoords []float64) {
	switch n := len(flatCoords) / layout.Stride(); {
	case n == 0:
	case n == 1:
		d.addPoint(layout, flatCoords)
	default:
		d.add(&Component{Kind: LinearComponent, Polygon: -1, layout: layout, flatCoords: flatCoords})
	}
}

func (d *decomposer) addPolygon(polygon *geom.Polygon) error {
	polygonIdx := d.polygons
	added := false
	for ringIdx := 0; ringIdx < polygon.NumLinearRings(); ringIdx++ {
		flatCoords := polygon.LinearRing(ringIdx).FlatCoords()
		if len(flatCoords) == 0 {
			continue
		}
		if err := validateRing(polygon.Layout(), flatCoords, ringIdx); err != nil {
			return err
		}
		d.add(&Component{
			Kind:       LinearComponent,
			Areal:      true,
			Polygon:    polygonIdx,
			Ring:       ringIdx,
			layout:     polygon.Layout(),
			flatCoords: flatCoords,
		})
		added = true
	}
	if added {
		d.polygons++
	}
	return nil
}

func (d *decomposer) add(c *Component) {
	c.Side = d.side
	c.Index = len(d.components)
	c.bounds = r2.EmptyRect()
	for i := 0; i < c.NumCoords(); i++ {
		c.bounds = c.bounds.AddPoint(toR2(c.Coord(i)))
	}
	d.components = append(d.components, c)
}

// validateRing checks that a ring has enough coordinates and is closed.
func validateRing(layout geom.Layout, flatCoords []float64, ringIdx int) error {
	stride := layout.Stride()
	n := len(flatCoords) / stride
	if n < minRingCoords {
		return newInvalidRingError(ringIdx, "ring has %d coordinates, need at least %d", n, minRingCoords)
	}
	first := flatCoords[:stride]
	last := flatCoords[(n-1)*stride:]
	if first[0] != last[0] || first[1] != last[1] {
		return newInvalidRingError(ringIdx, "ring is not closed")
	}
	return nil
}
