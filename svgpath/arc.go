package svgpath

import (
	"math"

	"github.com/npillmayer/geobox"
)

// Sub-arcs spanning more than this angle are split before being approximated
// by a cubic.
const maxArcSweep = 120 * math.Pi / 180

type arcPiece struct {
	theta float64 // start angle on the unit circle
	delta float64 // signed sweep
}

// arcToCubics approximates the elliptical arc from p to q with radii rx, ry,
// x-axis rotation phi (degrees) and the large-arc and sweep flags by cubic
// segments. The last segment ends exactly at q.
//
// Zero radii turn the arc into a straight line; an arc with coincident end
// points is omitted. Radii too small to span the chord are scaled up.
func arcToCubics(p, q geobox.Pair, rx, ry, phi float64, large, sweep bool) []Segment {
	if p == q {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Segment{lineSeg(p, q)}
	}
	phi *= geobox.Deg2Rad
	// half chord in the ellipse's axis frame
	d := geobox.Rotation(-phi).Transform((p - q).Scaled(0.5))
	dx, dy := d.X(), d.Y()
	if lambda := dx*dx/(rx*rx) + dy*dy/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*dy*dy - ry2*dx*dx
	den := rx2*dy*dy + ry2*dx*dx
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cf := geobox.P(coef*rx*dy/ry, -coef*ry*dx/rx) // center in the axis frame
	theta1 := geobox.P((dx-cf.X())/rx, (dy-cf.Y())/ry).Angle()
	theta2 := geobox.P((-dx-cf.X())/rx, (-dy-cf.Y())/ry).Angle()
	sweepAngle := theta2 - theta1
	if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	} else if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	}
	center := geobox.Rotation(phi).Transform(cf) + (p + q).Scaled(0.5)
	toUser := geobox.Scaling(rx, ry).Combine(geobox.Rotation(phi)).Combine(geobox.Translation(center))
	tracer().Debugf("arc center %v, radii %g/%g, θ=%g, Δθ=%g", center, rx, ry, theta1, sweepAngle)

	pieces := splitArc(arcPiece{theta: theta1, delta: sweepAngle})
	segs := make([]Segment, 0, len(pieces))
	for _, pc := range pieces {
		c1, c2, end := unitArcCubic(pc)
		segs = append(segs, cubicSeg(toUser.Transform(c1), toUser.Transform(c2), toUser.Transform(end)))
	}
	segs[len(segs)-1].Pts[2] = q
	for _, s := range segs {
		if !s.Pts[0].IsFinite() || !s.Pts[1].IsFinite() {
			tracer().Errorf("arc approximation is not finite, falling back to line")
			return []Segment{lineSeg(p, q)}
		}
	}
	return segs
}

// splitArc halves pieces until none spans more than maxArcSweep, using an
// explicit stack. The pieces are returned in drawing order.
func splitArc(arc arcPiece) []arcPiece {
	var pieces []arcPiece
	stack := []arcPiece{arc}
	for len(stack) > 0 {
		pc := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if math.Abs(pc.delta) > maxArcSweep {
			half := pc.delta / 2
			stack = append(stack,
				arcPiece{theta: pc.theta + half, delta: half},
				arcPiece{theta: pc.theta, delta: half})
			continue
		}
		pieces = append(pieces, pc)
	}
	return pieces
}

// unitArcCubic returns the control points and end point of a cubic
// approximating a piece of the unit circle. Control points are placed on the
// tangents at distance 4/3·tan(Δθ/4).
func unitArcCubic(pc arcPiece) (geobox.Pair, geobox.Pair, geobox.Pair) {
	k := 4.0 / 3.0 * math.Tan(pc.delta/4)
	s1, c1 := math.Sincos(pc.theta)
	s2, c2 := math.Sincos(pc.theta + pc.delta)
	return geobox.P(c1-k*s1, s1+k*c1),
		geobox.P(c2+k*s2, s2-k*c2),
		geobox.P(c2, s2)
}
