package stroke

import (
	"math"

	"github.com/npillmayer/geobox"
)

// base holds the per-call state shared by join and cap projections.
type base struct {
	opts          Options
	magnitude     float64     // half the stroke width
	scale         geobox.Pair // (scaleX, scaleY)
	uniformScalar geobox.Pair // compensates scale in stroke-uniform mode
	skew          geobox.AT
	skewed        bool
}

// newBase prepares projection state from options. Options the math cannot
// honour are replaced by neutral values and reported to the trace.
func newBase(opts Options) base {
	if err := opts.Validate(); err != nil {
		tracer().Errorf("stroke options: %v", err)
	}
	b := base{opts: opts}
	if opts.Width > 0 && geobox.IsFinite(opts.Width) {
		b.magnitude = opts.Width / 2
	}
	sx, sy := opts.ScaleX, opts.ScaleY
	if sx == 0 || !geobox.IsFinite(sx) {
		sx = 1
	}
	if sy == 0 || !geobox.IsFinite(sy) {
		sy = 1
	}
	b.opts.ScaleX, b.opts.ScaleY = sx, sy
	b.scale = geobox.P(sx, sy)
	b.uniformScalar = geobox.P(1, 1)
	if opts.Uniform {
		b.uniformScalar = geobox.P(1/sx, 1/sy)
	}
	if math.IsNaN(opts.MiterLimit) || opts.MiterLimit < 1 {
		b.opts.MiterLimit = 1
	}
	if !geobox.IsFinite(opts.SkewX) {
		b.opts.SkewX = 0
	}
	if !geobox.IsFinite(opts.SkewY) {
		b.opts.SkewY = 0
	}
	b.skewed = b.opts.SkewX != 0 || b.opts.SkewY != 0
	b.skew = geobox.Skewing(b.opts.SkewX*geobox.Deg2Rad, b.opts.SkewY*geobox.Deg2Rad)
	return b
}

// sideVector is the vector from one point to another. In stroke-uniform
// mode it is measured in rendered space.
func (b base) sideVector(from, to geobox.Pair) geobox.Pair {
	v := to - from
	if b.opts.Uniform {
		return v.Mul(b.scale)
	}
	return v
}

// scaleUnitVector converts a unit offset into a stroke offset of length
// scalar, compensated for the object's scale in stroke-uniform mode.
func (b base) scaleUnitVector(unit geobox.Pair, scalar float64) geobox.Pair {
	return unit.Mul(b.uniformScalar).Scaled(scalar)
}

// applySkew shears y first, then x using the already sheared y.
func (b base) applySkew(p geobox.Pair) geobox.Pair {
	if !b.skewed {
		return p
	}
	return b.skew.Transform(p)
}

func (b base) isSkewed() bool {
	return b.skewed
}

// acuteAngleFactor is -1 if the angle between v and ref is less than 90
// degrees, +1 otherwise. Offsets multiplied by it point away from ref.
func acuteAngleFactor(v, ref geobox.Pair) float64 {
	if math.Abs(v.AngleTo(ref)) < math.Pi/2 {
		return -1
	}
	return 1
}

var xAxis = geobox.P(1, 0)
