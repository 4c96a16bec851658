package stroke

import (
	"math"

	"github.com/npillmayer/geobox"
)

// joinProjector projects the stroke outline at vertex A, with B the previous
// and C the next vertex.
type joinProjector struct {
	base
	A, B, C  geobox.Pair
	AB, AC   geobox.Pair
	alpha    float64 // signed angle from AB to AC
	bisector geobox.Pair
}

func newJoinProjector(A, B, C geobox.Pair, b base) *joinProjector {
	j := &joinProjector{base: b, A: A, B: B, C: C}
	j.AB = b.sideVector(A, B)
	j.AC = b.sideVector(A, C)
	j.alpha = j.AB.AngleTo(j.AC)
	ref := j.AB
	if ref.IsOrigin() {
		ref = j.AC
	}
	j.bisector = ref.Rotated(j.alpha / 2).Unit()
	return j
}

func (j *joinProjector) project() []Projection {
	if j.magnitude == 0 || j.AB.IsOrigin() || j.AC.IsOrigin() {
		return nil
	}
	var pts []geobox.Pair
	switch j.opts.LineJoin {
	case JoinBevel:
		pts = j.projectBevel()
	case JoinRound:
		pts = j.projectRound()
	default:
		pts = j.projectMiter()
	}
	bisector := &Bisector{Vector: j.bisector, Angle: j.alpha}
	projs := make([]Projection, len(pts))
	for i, p := range pts {
		projs[i] = Projection{Origin: j.A, Projected: p, Bisector: bisector}
	}
	return projs
}

// straightBack is true if B and C lie in the same direction from A.
func (j *joinProjector) straightBack() bool {
	return geobox.Is0(j.alpha)
}

// orthogonalProjection is the offset perpendicular to from→to, on the outer
// side of the corner.
func (j *joinProjector) orthogonalProjection(from, to geobox.Pair, magnitude float64) geobox.Pair {
	o := j.sideVector(from, to).Orthonormal()
	return j.scaleUnitVector(o, magnitude*acuteAngleFactor(o, j.bisector))
}

func (j *joinProjector) projectOrthogonally(from, to geobox.Pair, magnitude float64) geobox.Pair {
	return j.applySkew(from + j.orthogonalProjection(from, to, magnitude))
}

// projectBevel returns the outer ends of both sides. Sides running back
// onto each other have no outer side, so both sides of AB are returned.
func (j *joinProjector) projectBevel() []geobox.Pair {
	if j.straightBack() {
		return []geobox.Pair{
			j.projectOrthogonally(j.A, j.B, j.magnitude),
			j.projectOrthogonally(j.A, j.B, -j.magnitude),
		}
	}
	return []geobox.Pair{
		j.projectOrthogonally(j.A, j.B, j.magnitude),
		j.projectOrthogonally(j.A, j.C, j.magnitude),
	}
}

// projectMiter returns the miter tip, or the bevel if the miter exceeds
// the miter limit.
func (j *joinProjector) projectMiter() []geobox.Pair {
	sin := math.Sin(math.Abs(j.alpha) / 2)
	if geobox.Is0(sin) {
		return j.projectBevel()
	}
	miter := j.scaleUnitVector(j.bisector, -j.magnitude/sin)
	limit := j.opts.MiterLimit
	if j.opts.Uniform {
		limit = j.scaleUnitVector(j.bisector, limit).Length()
	}
	if miter.Length()/j.magnitude > limit {
		tracer().Debugf("miter at %v exceeds limit %g, beveling", j.A, limit)
		return j.projectBevel()
	}
	return []geobox.Pair{j.applySkew(j.A + miter)}
}

func (j *joinProjector) projectRound() []geobox.Pair {
	if j.isSkewed() {
		return j.projectRoundWithSkew()
	}
	return j.projectRoundNoSkew()
}

// projectRoundNoSkew returns the points of the stroke circle furthest out
// along each axis, on the outer side of the corner.
func (j *joinProjector) projectRoundNoSkew() []geobox.Pair {
	var pts []geobox.Pair
	if j.straightBack() {
		pts = j.projectBevel()
	}
	fx := acuteAngleFactor(j.bisector, xAxis)
	fy := acuteAngleFactor(j.bisector.Swapped(), xAxis)
	rx := j.scaleUnitVector(geobox.P(1, 0), j.magnitude*fx)
	ry := j.scaleUnitVector(geobox.P(0, 1), j.magnitude*fy)
	return append(pts, j.applySkew(j.A+rx), j.applySkew(j.A+ry))
}

// projectRoundWithSkew returns the ends of the circle segment plus the
// points of the sheared circle (an ellipse) furthest out along each axis,
// together with their mirrors.
//
// The skew matrix S maps local offsets to sheared ones. The ellipse point
// furthest along axis e is the image of the circle point in direction
// D·Sᵀ·e, where D is the stroke-uniform compensation.
func (j *joinProjector) projectRoundWithSkew() []geobox.Pair {
	pts := j.projectBevel()
	tx := math.Tan(j.opts.SkewX * geobox.Deg2Rad)
	ty := math.Tan(j.opts.SkewY * geobox.Deg2Rad)
	k := j.uniformScalar
	furthestX := geobox.P(k.X()*(1+tx*ty), k.Y()*tx)
	furthestY := geobox.P(k.X()*ty, k.Y())
	for _, dir := range []geobox.Pair{furthestX, furthestY} {
		r := j.scaleUnitVector(dir.Unit(), j.magnitude)
		pts = append(pts, j.applySkew(j.A+r), j.applySkew(j.A-r))
	}
	return pts
}
