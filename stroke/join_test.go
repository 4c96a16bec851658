package stroke

import (
	"math"
	"testing"

	"github.com/npillmayer/geobox"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func assertPair(t *testing.T, want, got geobox.Pair) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), tol, "x of %v", got)
	assert.InDelta(t, want.Y(), got.Y(), tol, "y of %v", got)
}

func projected(projs []Projection) []geobox.Pair {
	pts := make([]geobox.Pair, len(projs))
	for i, p := range projs {
		pts[i] = p.Projected
	}
	return pts
}

func assertSamePoints(t *testing.T, want, got []geobox.Pair) {
	t.Helper()
	require.Len(t, got, len(want))
	for _, w := range want {
		found := false
		for _, g := range got {
			if (w - g).Length() < 1e-9 {
				found = true
				break
			}
		}
		assert.True(t, found, "expected %v in %v", w, got)
	}
}

func options(width float64, join LineJoin) Options {
	opts := DefaultOptions()
	opts.Width = width
	opts.LineJoin = join
	return opts
}

func TestApplySkewOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions()
	opts.SkewX, opts.SkewY = 45, 45
	b := newBase(opts)
	assert.True(t, b.isSkewed())
	assertPair(t, geobox.P(1, 1), b.applySkew(geobox.P(0, 1)))
	// shearing x first would map (1,0) onto (1,1)
	assertPair(t, geobox.P(2, 1), b.applySkew(geobox.P(1, 0)))
	opts.SkewX, opts.SkewY = 30, 0
	b = newBase(opts)
	assertPair(t, geobox.P(1+math.Tan(30*geobox.Deg2Rad), 1), b.applySkew(geobox.P(1, 1)))
	assert.False(t, newBase(DefaultOptions()).isSkewed())
}

func TestAcuteAngleFactor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, -1.0, acuteAngleFactor(geobox.P(1, 1), xAxis))
	assert.Equal(t, 1.0, acuteAngleFactor(geobox.P(-1, 1), xAxis))
	assert.Equal(t, 1.0, acuteAngleFactor(geobox.P(0, 1), xAxis))
	assert.Equal(t, -1.0, acuteAngleFactor(geobox.P(0, -1), geobox.P(1, -2)))
}

func TestUniformScaleCompensation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions()
	opts.ScaleX, opts.ScaleY = 2, 4
	b := newBase(opts)
	assert.Equal(t, geobox.P(1, 1), b.sideVector(geobox.P(1, 1), geobox.P(2, 2)))
	assert.Equal(t, geobox.P(3, 0), b.scaleUnitVector(geobox.P(1, 0), 3))
	opts.Uniform = true
	b = newBase(opts)
	assert.Equal(t, geobox.P(2, 4), b.sideVector(geobox.P(1, 1), geobox.P(2, 2)))
	assert.Equal(t, geobox.P(1.5, 0.75), b.scaleUnitVector(geobox.P(1, 1), 3))
	// a zero scale factor is neutralized
	opts.ScaleX = 0
	b = newBase(opts)
	assert.Equal(t, geobox.P(1, 0.25), b.uniformScalar)
}

func TestJoinBisector(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	j := newJoinProjector(geobox.P(1, 0), geobox.P(0, 0), geobox.P(1, 1), newBase(options(2, JoinMiter)))
	assert.InDelta(t, -math.Pi/2, j.alpha, tol)
	assertPair(t, geobox.P(-math.Sqrt2/2, math.Sqrt2/2), j.bisector)
}

func TestMiterJoin(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A, B := geobox.P(0, 0), geobox.P(10, 0)
	C := geobox.P(10, 0).Rotated(10 * geobox.Deg2Rad)
	opts := options(2, JoinMiter)
	opts.MiterLimit = 20
	projs := newJoinProjector(A, B, C, newBase(opts)).project()
	require.Len(t, projs, 1)
	d := 1 / math.Sin(5*geobox.Deg2Rad)
	assertPair(t, geobox.P(1, 0).Rotated(5*geobox.Deg2Rad).Scaled(-d), projs[0].Projected)
	assert.Equal(t, A, projs[0].Origin)
	require.NotNil(t, projs[0].Bisector)
	assert.InDelta(t, 10*geobox.Deg2Rad, projs[0].Bisector.Angle, tol)
}

func TestMiterFallsBackToBevel(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A, B := geobox.P(0, 0), geobox.P(10, 0)
	C := geobox.P(10, 0).Rotated(10 * geobox.Deg2Rad)
	opts := options(2, JoinMiter)
	opts.MiterLimit = 1
	miter := newJoinProjector(A, B, C, newBase(opts)).project()
	opts.LineJoin = JoinBevel
	bevel := newJoinProjector(A, B, C, newBase(opts)).project()
	require.Len(t, miter, 2)
	assert.Equal(t, bevel, miter)
	assertSamePoints(t, []geobox.Pair{
		geobox.P(0, -1),
		geobox.P(-math.Sin(10*geobox.Deg2Rad), math.Cos(10*geobox.Deg2Rad)),
	}, projected(miter))
}

func TestRoundJoinRightAngle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A, B, C := geobox.P(1, 0), geobox.P(0, 0), geobox.P(1, 1)
	projs := newJoinProjector(A, B, C, newBase(options(2, JoinRound))).project()
	require.Len(t, projs, 2)
	// outward of the corner is away from both neighbours
	assertPair(t, geobox.P(2, 0), projs[0].Projected)
	assertPair(t, geobox.P(1, -1), projs[1].Projected)
	for _, p := range projs {
		assert.InDelta(t, 1.0, (p.Projected - A).Length(), tol)
	}
}

func TestRoundJoinWithSkew(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := options(2, JoinRound)
	opts.SkewX = 45
	A, B, C := geobox.P(0, 0), geobox.P(-10, 0), geobox.P(0, 10)
	pts := projected(newJoinProjector(A, B, C, newBase(opts)).project())
	require.Len(t, pts, 6)
	// sheared unit circle x' = x+y reaches furthest out at ±√2
	maxX, minX := math.Inf(-1), math.Inf(1)
	for _, p := range pts {
		maxX = math.Max(maxX, p.X())
		minX = math.Min(minX, p.X())
	}
	assert.InDelta(t, math.Sqrt2, maxX, tol)
	assert.InDelta(t, -math.Sqrt2, minX, tol)
}

func TestJoinDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := geobox.P(3, 3)
	assert.Empty(t, newJoinProjector(A, A, geobox.P(5, 5), newBase(options(2, JoinMiter))).project())
	assert.Empty(t, newJoinProjector(A, geobox.P(1, 1), A, newBase(options(2, JoinRound))).project())
	assert.Empty(t, newJoinProjector(A, geobox.P(1, 1), geobox.P(5, 1), newBase(options(0, JoinBevel))).project())
	// sides running back onto each other project onto both sides
	for _, join := range []LineJoin{JoinMiter, JoinBevel} {
		pts := projected(newJoinProjector(A, geobox.P(5, 3), geobox.P(9, 3), newBase(options(2, join))).project())
		assertSamePoints(t, []geobox.Pair{geobox.P(3, 2), geobox.P(3, 4)}, pts)
	}
	for _, p := range newJoinProjector(A, geobox.P(5, 3), geobox.P(9, 3), newBase(options(2, JoinRound))).project() {
		assert.True(t, p.Projected.IsFinite())
	}
}

func TestUniformJoin(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// about 28 degrees in local space, a right angle when scaled by (4,1)
	A, B, C := geobox.P(0, 0), geobox.P(1, 4), geobox.P(-1, 4)
	opts := options(2, JoinMiter)
	opts.ScaleX, opts.ScaleY = 4, 1
	opts.MiterLimit = 4
	projs := newJoinProjector(A, B, C, newBase(opts)).project()
	require.Len(t, projs, 2, "miter ratio 1/sin(14°) exceeds the limit")
	s := math.Sqrt(17)
	assertSamePoints(t, []geobox.Pair{geobox.P(4/s, -1/s), geobox.P(-4/s, -1/s)}, projected(projs))

	opts.Uniform = true
	j := newJoinProjector(A, B, C, newBase(opts))
	assert.InDelta(t, math.Pi/2, j.alpha, tol)
	assertPair(t, geobox.P(0, 1), j.bisector)
	projs = j.project()
	require.Len(t, projs, 1)
	assertPair(t, geobox.P(0, -math.Sqrt2), projs[0].Projected)
	assert.InDelta(t, math.Pi/2, projs[0].Bisector.Angle, tol)

	// offsets are compensated in local space
	opts.LineJoin = JoinBevel
	pts := projected(newJoinProjector(A, B, C, newBase(opts)).project())
	assertSamePoints(t, []geobox.Pair{
		geobox.P(math.Sqrt2/8, -math.Sqrt2/2),
		geobox.P(-math.Sqrt2/8, -math.Sqrt2/2),
	}, pts)
}

func TestUniformMiterLimit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a right angle locally, a sharp corner when scaled by (1,8)
	A, B, C := geobox.P(0, 0), geobox.P(1, 1), geobox.P(-1, 1)
	opts := options(2, JoinMiter)
	opts.ScaleX, opts.ScaleY = 1, 8
	opts.MiterLimit = 4
	assert.Len(t, newJoinProjector(A, B, C, newBase(opts)).project(), 1)
	opts.Uniform = true
	assert.Len(t, newJoinProjector(A, B, C, newBase(opts)).project(), 2)
}
