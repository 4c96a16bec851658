// Package bezier finds the tight axis-aligned bounding box of cubic Bézier
// segments.
//
// The extreme points of a cubic on either axis are located where the first
// derivative vanishes. The derivative of
//
//	B(t) = (1-t)³·P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3
//
// is the quadratic a·t² + b·t + c with
//
//	a = -3·P0 + 9·P1 - 9·P2 + 3·P3
//	b =  6·P0 - 12·P1 + 6·P2
//	c =  3·P1 - 3·P0
//
// which is solved independently for x and y.
package bezier

import (
	"math"
	"sort"

	"github.com/npillmayer/geobox"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geobox.bezier'
func tracer() tracing.Trace {
	return tracing.Select("geobox.bezier")
}

// Coefficients below this threshold are considered 0 for root finding.
const negligible = 1e-12

// Eval returns the point of the cubic Bézier curve (p0,p1,p2,p3) at
// parameter t.
func Eval(p0, p1, p2, p3 geobox.Pair, t float64) geobox.Pair {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return p0.Scaled(a) + p1.Scaled(b) + p2.Scaled(c) + p3.Scaled(d)
}

// Extrema returns the curve parameters strictly between 0 and 1 where the
// curve has a horizontal or vertical tangent, in ascending order.
func Extrema(p0, p1, p2, p3 geobox.Pair) []float64 {
	ts := criticalPoints(p0.X(), p1.X(), p2.X(), p3.X(), nil)
	ts = criticalPoints(p0.Y(), p1.Y(), p2.Y(), p3.Y(), ts)
	sort.Float64s(ts)
	return ts
}

// BoundsOfCubic returns the tightest axis-aligned box containing the cubic
// Bézier curve (p0,p1,p2,p3) for t ∈ [0,1]. For a straight line the box
// spans the two endpoints.
func BoundsOfCubic(p0, p1, p2, p3 geobox.Pair) geobox.Box {
	box := geobox.BoxOf(p0, p3)
	for _, t := range Extrema(p0, p1, p2, p3) {
		box = box.Extend(Eval(p0, p1, p2, p3, t))
	}
	tracer().Debugf("bounds of cubic %v %v %v %v = %v", p0, p1, p2, p3, box)
	return box
}

// criticalPoints appends to ts the roots of the derivative on one axis which
// lie strictly inside (0,1).
func criticalPoints(p0, p1, p2, p3 float64, ts []float64) []float64 {
	a := -3*p0 + 9*p1 - 9*p2 + 3*p3
	b := 6*p0 - 12*p1 + 6*p2
	c := 3*p1 - 3*p0
	if math.Abs(a) < negligible {
		if math.Abs(b) < negligible { // derivative is constant
			return ts
		}
		return keep(ts, -c/b)
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return ts
	}
	sq := math.Sqrt(disc)
	ts = keep(ts, (-b+sq)/(2*a))
	if disc > 0 {
		ts = keep(ts, (-b-sq)/(2*a))
	}
	return ts
}

func keep(ts []float64, t float64) []float64 {
	if t > 0 && t < 1 {
		return append(ts, t)
	}
	return ts
}
