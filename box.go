package geobox

import (
	"fmt"
	"math"
)

// Box is an axis-aligned bounding box. Width and Height are kept in sync
// with the edges by all constructors and methods of this package; clients
// should not set them independently.
type Box struct {
	Left, Top     float64
	Right, Bottom float64
	Width, Height float64
}

// NewBox creates a box from two opposite edges. The edges are re-ordered if
// necessary.
func NewBox(left, top, right, bottom float64) Box {
	if !IsFinite(left) || !IsFinite(top) || !IsFinite(right) || !IsFinite(bottom) {
		tracer().Errorf("box with non-finite edges (%g,%g)-(%g,%g)", left, top, right, bottom)
	}
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	return Box{
		Left:   left,
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Width:  right - left,
		Height: bottom - top,
	}
}

// BoxOf returns the smallest box containing all of pts. For an empty
// argument list the zero box is returned.
func BoxOf(pts ...Pair) Box {
	if len(pts) == 0 {
		return Box{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return NewBox(lo.X(), lo.Y(), hi.X(), hi.Y())
}

// Min is the top-left corner of b.
func (b Box) Min() Pair {
	return P(b.Left, b.Top)
}

// Max is the bottom-right corner of b.
func (b Box) Max() Pair {
	return P(b.Right, b.Bottom)
}

// Extend returns a box enlarged to contain p.
func (b Box) Extend(p Pair) Box {
	return NewBox(
		math.Min(b.Left, p.X()), math.Min(b.Top, p.Y()),
		math.Max(b.Right, p.X()), math.Max(b.Bottom, p.Y()),
	)
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return NewBox(
		math.Min(b.Left, o.Left), math.Min(b.Top, o.Top),
		math.Max(b.Right, o.Right), math.Max(b.Bottom, o.Bottom),
	)
}

// Contains is a predicate: does p lie inside or on the border of b?
func (b Box) Contains(p Pair) bool {
	return p.X() >= b.Left && p.X() <= b.Right && p.Y() >= b.Top && p.Y() <= b.Bottom
}

// Shifted returns b translated by v.
func (b Box) Shifted(v Pair) Box {
	return NewBox(b.Left+v.X(), b.Top+v.Y(), b.Right+v.X(), b.Bottom+v.Y())
}

// IsZero is a predicate: is b the zero box?
func (b Box) IsZero() bool {
	return b == Box{}
}

func (b Box) String() string {
	return fmt.Sprintf("[(%g,%g)-(%g,%g) %gx%g]", b.Left, b.Top, b.Right, b.Bottom, b.Width, b.Height)
}
