package stroke

import (
	"github.com/npillmayer/geobox"
)

// capProjector projects the stroke outline at the end point A of an open
// line, with T its only neighbour.
type capProjector struct {
	base
	A, T geobox.Pair
}

func newCapProjector(A, T geobox.Pair, b base) *capProjector {
	return &capProjector{base: b, A: A, T: T}
}

func (c *capProjector) project() []Projection {
	if c.magnitude == 0 || c.A.Equal(c.T) {
		return nil
	}
	var pts []geobox.Pair
	switch c.opts.LineCap {
	case CapRound:
		pts = newJoinProjector(c.A, c.T, c.T, c.base).projectRound()
	case CapSquare:
		pts = c.projectSquare()
	default:
		pts = c.projectButt()
	}
	projs := make([]Projection, len(pts))
	for i, p := range pts {
		projs[i] = Projection{Origin: c.A, Projected: p}
	}
	return projs
}

func (c *capProjector) orthogonalProjection(magnitude float64) geobox.Pair {
	return c.scaleUnitVector(c.sideVector(c.A, c.T).Orthonormal(), magnitude)
}

func (c *capProjector) projectButt() []geobox.Pair {
	return []geobox.Pair{
		c.applySkew(c.A + c.orthogonalProjection(c.magnitude)),
		c.applySkew(c.A + c.orthogonalProjection(-c.magnitude)),
	}
}

// projectSquare returns the butt pair and the butt pair pushed outward by
// half the stroke width.
func (c *capProjector) projectSquare() []geobox.Pair {
	o := c.orthogonalProjection(c.magnitude)
	out := c.scaleUnitVector(c.sideVector(c.A, c.T).Unit(), -c.magnitude)
	pushed := c.A + out
	return []geobox.Pair{
		c.applySkew(c.A + o),
		c.applySkew(c.A - o),
		c.applySkew(pushed + o),
		c.applySkew(pushed - o),
	}
}
