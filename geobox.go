/*
Package geobox implements points, affine transformations and axis-aligned
bounding boxes for 2D vector shapes. It is the common ground for the path
bounds engine (package svgpath) and the stroke projection engine (package
stroke).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package geobox

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geobox'
func tracer() tracing.Trace {
	return tracing.Select("geobox")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// IsFinite is a predicate: is n neither NaN nor ±Inf?
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector. Addition and subtraction of pairs use
// the native complex operators.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// IsFinite is a predicate: are both parts of p finite?
func (p Pair) IsFinite() bool {
	return IsFinite(p.X()) && IsFinite(p.Y())
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Mul multiplies two pairs componentwise.
func (p Pair) Mul(q Pair) Pair {
	return P(p.X()*q.X(), p.Y()*q.Y())
}

// Swapped exchanges x-part and y-part.
func (p Pair) Swapped() Pair {
	return P(p.Y(), p.X())
}

// Dot is the scalar product of two vectors.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross is the z-component of the cross product of two vectors.
func (p Pair) Cross(q Pair) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// Length is the euclidean norm of a vector.
func (p Pair) Length() float64 {
	return math.Hypot(p.X(), p.Y())
}

// Unit returns the unit vector pointing in the direction of p.
// The zero vector has no direction and is returned unchanged.
func (p Pair) Unit() Pair {
	l := p.Length()
	if l == 0 {
		return Origin
	}
	return P(p.X()/l, p.Y()/l)
}

// Orthonormal returns the unit vector perpendicular to p, rotated
// counter-clockwise.
func (p Pair) Orthonormal() Pair {
	return P(-p.Y(), p.X()).Unit()
}

// Angle is the rotation of vector p against the positive x-axis, in radians.
func (p Pair) Angle() float64 {
	return math.Atan2(p.Y(), p.X())
}

// AngleTo returns the signed angle from vector p to vector q, in radians
// between -π and π. If either vector is zero, the angle is 0.
func (p Pair) AngleTo(q Pair) float64 {
	return math.Atan2(p.Cross(q), p.Dot(q))
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	T := Translation(v)
	return T.Transform(p)
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p)
}

// Min returns the componentwise minimum of two pairs.
func (p Pair) Min(q Pair) Pair {
	return P(math.Min(p.X(), q.X()), math.Min(p.Y(), q.Y()))
}

// Max returns the componentwise maximum of two pairs.
func (p Pair) Max(q Pair) Pair {
	return P(math.Max(p.X(), q.X()), math.Max(p.Y(), q.Y()))
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin, cos := math.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Scaling transform. Scale a point by sx horizontally and sy vertically.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Skewing transform. Shears a point by angles skewX and skewY (radians).
// The vertical shear is applied first and the horizontal shear works on
// the already sheared y-coordinate:
//
//	y' = y + x·tan(skewY)
//	x' = x + y'·tan(skewX)
func Skewing(skewX, skewY float64) AT {
	tx, ty := math.Tan(skewX), math.Tan(skewY)
	m := Identity()
	m.set(0, 0, 1+tx*ty)
	m.set(0, 1, tx)
	m.set(1, 0, ty)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	return p1 + p2 + p3
}

// Combine 2 affine transformation to a new one. Returns a new transformation
// without changing the argument(s). The resulting transform applies m first,
// then n.
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(
		m[0]*x+m[1]*y+m[2],
		m[3]*x+m[4]*y+m[5],
	)
}
