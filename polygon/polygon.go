/*
Package polygon provides point lists for polygons and polylines, the input
of stroke projection.

A polygon is built with a builder-like API, very much like paths are built
in MetaFont:

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

Knots are stored as a polyclip contour, making polygons usable with the
clipping operations of github.com/akavel/polyclip-go.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/geobox"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'geobox.polygon'.
func L() tracing.Trace {
	return tracing.Select("geobox.polygon")
}

// Polygon is a sequence of knots. A cyclic polygon is closed, an open one
// is a polyline.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates an open polygon from a list of points.
func FromPoints(pts []geobox.Pair) *Polygon {
	pg := &Polygon{contour: make(polyclip.Contour, 0, len(pts))}
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg
}

// Box creates a closed rectangle from two opposite corners.
func Box(p1, p2 geobox.Pair) *Polygon {
	x1, y1 := p1.F()
	x2, y2 := p2.F()
	return NullPolygon().Knot(geobox.P(x1, y1)).Knot(geobox.P(x2, y1)).
		Knot(geobox.P(x2, y2)).Knot(geobox.P(x1, y2)).Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p geobox.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves a polygon open. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Pt returns knot i (mod N). An empty polygon has no knots and returns
// the origin.
func (pg *Polygon) Pt(i int) geobox.Pair {
	n := pg.N()
	if n == 0 {
		L().Errorf("knot %d of empty polygon requested", i)
		return geobox.Origin
	}
	i = ((i % n) + n) % n
	return geobox.P(pg.contour[i].X, pg.contour[i].Y)
}

// Points returns a copy of the knots.
func (pg *Polygon) Points() []geobox.Pair {
	pts := make([]geobox.Pair, pg.N())
	for i, p := range pg.contour {
		pts[i] = geobox.P(p.X, p.Y)
	}
	return pts
}

// Contour returns the knots as a polyclip contour.
func (pg *Polygon) Contour() polyclip.Contour {
	return pg.contour.Clone()
}

// BoundingBox returns the bounding box of the knots. An empty polygon has
// the zero box.
func (pg *Polygon) BoundingBox() geobox.Box {
	return BoundsOf(pg.contour)
}

// BoundsOf returns the bounding box of a polyclip contour. An empty contour
// has the zero box.
func BoundsOf(c polyclip.Contour) geobox.Box {
	if len(c) == 0 {
		return geobox.Box{}
	}
	r := c.BoundingBox()
	return geobox.NewBox(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(pg.Pt(i).String())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
