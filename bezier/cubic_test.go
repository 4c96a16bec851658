package bezier

import (
	"testing"

	"github.com/npillmayer/geobox"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func TestEvalEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p1, p2, p3 := geobox.P(0, 0), geobox.P(1, 2), geobox.P(3, 2), geobox.P(4, 0)
	assert.Equal(t, p0, Eval(p0, p1, p2, p3, 0))
	assert.Equal(t, p3, Eval(p0, p1, p2, p3, 1))
	mid := Eval(p0, p1, p2, p3, 0.5)
	assert.InDelta(t, 2.0, mid.X(), tol)
	assert.InDelta(t, 1.5, mid.Y(), tol)
}

func TestBoundsOfStraightLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p0, p3 := geobox.P(10, 5), geobox.P(0, 0)
	box := BoundsOfCubic(p0, p0, p3, p3)
	assert.Equal(t, geobox.NewBox(0, 0, 10, 5), box)
	assert.Empty(t, Extrema(p0, p0, p3, p3))
}

func TestBoundsOfArch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// symmetric arch peaking at t=0.5 with y = 0.75·h
	p0, p1, p2, p3 := geobox.P(0, 0), geobox.P(0, 4), geobox.P(4, 4), geobox.P(4, 0)
	box := BoundsOfCubic(p0, p1, p2, p3)
	assert.InDelta(t, 0.0, box.Left, tol)
	assert.InDelta(t, 0.0, box.Top, tol)
	assert.InDelta(t, 4.0, box.Right, tol)
	assert.InDelta(t, 3.0, box.Bottom, tol)
	assert.InDelta(t, 3.0, box.Height, tol)
}

func TestBoundsLinearDerivative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// y-coefficients yield a = 0, leaving the linear case 12t - 6 = 0
	p0, p1, p2, p3 := geobox.P(0, 0), geobox.P(1, -2), geobox.P(2, -2), geobox.P(3, 0)
	box := BoundsOfCubic(p0, p1, p2, p3)
	assert.InDelta(t, -1.5, box.Top, tol)
	assert.InDelta(t, 0.0, box.Bottom, tol)
}

func TestBoundsContainment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curves := [][4]geobox.Pair{
		{geobox.P(0, 0), geobox.P(10, 20), geobox.P(-5, 15), geobox.P(3, -4)},
		{geobox.P(-3, 7), geobox.P(12, -9), geobox.P(1, 30), geobox.P(-8, 2)},
		{geobox.P(5, 5), geobox.P(5, 5), geobox.P(5, 5), geobox.P(5, 5)},
		{geobox.P(0, 0), geobox.P(100, 0), geobox.P(-100, 0), geobox.P(1, 0)},
	}
	for _, c := range curves {
		box := BoundsOfCubic(c[0], c[1], c[2], c[3])
		lo, hi := geobox.P(box.Right, box.Bottom), geobox.P(box.Left, box.Top)
		for i := 0; i <= 1000; i++ {
			p := Eval(c[0], c[1], c[2], c[3], float64(i)/1000)
			assert.True(t, p.X() >= box.Left-tol && p.X() <= box.Right+tol, "x %g outside %v", p.X(), box)
			assert.True(t, p.Y() >= box.Top-tol && p.Y() <= box.Bottom+tol, "y %g outside %v", p.Y(), box)
			lo, hi = lo.Min(p), hi.Max(p)
		}
		// the box touches the sampled extremes up to the sampling resolution
		assert.InDelta(t, box.Left, lo.X(), 1e-3*box.Width+tol)
		assert.InDelta(t, box.Right, hi.X(), 1e-3*box.Width+tol)
		assert.InDelta(t, box.Top, lo.Y(), 1e-3*box.Height+tol)
		assert.InDelta(t, box.Bottom, hi.Y(), 1e-3*box.Height+tol)
	}
}
