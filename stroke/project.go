package stroke

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/geobox"
	"github.com/npillmayer/geobox/polygon"
)

// Bisector is the angle bisector at a line join. Vector is a unit vector
// pointing into the smaller angle between the two sides, Angle is the signed
// angle from the previous to the next side, in radians.
type Bisector struct {
	Vector geobox.Pair
	Angle  float64
}

// Projection is a point of the stroke outline, derived from vertex Origin.
// Bisector is set for projections of line joins only.
type Projection struct {
	Origin    geobox.Pair
	Projected geobox.Pair
	Bisector  *Bisector
}

func (p Projection) String() string {
	return fmt.Sprintf("%v→%v", p.Origin, p.Projected)
}

// projector is implemented by joinProjector and capProjector.
type projector interface {
	project() []Projection
}

// ProjectStrokeOnPoints projects the stroke outline of a point list onto
// outward boundary points. If openPath is true, the first and last point
// receive line caps, otherwise the point list is closed and every point
// receives a line join.
//
// Fewer than two points have no defined direction and yield no projections.
func ProjectStrokeOnPoints(points []geobox.Pair, opts Options, openPath bool) []Projection {
	projs := []Projection{}
	n := len(points)
	if n <= 1 {
		return projs
	}
	b := newBase(opts)
	for i, A := range points {
		var B, C geobox.Pair
		switch i {
		case 0:
			C = points[1]
			B = points[n-1]
			if openPath {
				B = A
			}
		case n - 1:
			B = points[i-1]
			C = points[0]
			if openPath {
				C = A
			}
		default:
			B, C = points[i-1], points[i+1]
		}
		var p projector
		if openPath && i == 0 {
			p = newCapProjector(A, C, b)
		} else if openPath && i == n-1 {
			p = newCapProjector(A, B, b)
		} else {
			p = newJoinProjector(A, B, C, b)
		}
		projs = append(projs, p.project()...)
	}
	tracer().Debugf("%d points projected onto %d stroke points", n, len(projs))
	return projs
}

// ProjectPolygon projects the stroke outline of a polygon. Cyclic polygons
// are joined at every knot, open ones are capped at both ends.
func ProjectPolygon(pg *polygon.Polygon, opts Options) []Projection {
	if pg == nil {
		return []Projection{}
	}
	return ProjectStrokeOnPoints(pg.Points(), opts, !pg.IsCycle())
}

// Bounds reduces projections to the bounding box of their projected points.
// No projections result in the zero box.
func Bounds(projs []Projection) geobox.Box {
	c := make(polyclip.Contour, 0, len(projs))
	for _, p := range projs {
		c.Add(polyclip.Point{X: p.Projected.X(), Y: p.Projected.Y()})
	}
	return polygon.BoundsOf(c)
}

// StrokeBounds returns the bounding box of a point list inflated by its
// stroke. For a stroke of zero width this is the bounding box of the points.
func StrokeBounds(points []geobox.Pair, opts Options, openPath bool) geobox.Box {
	if len(points) == 0 {
		return geobox.Box{}
	}
	pg := polygon.FromPoints(points)
	c := pg.Contour()
	for _, p := range ProjectStrokeOnPoints(points, opts, openPath) {
		c.Add(polyclip.Point{X: p.Projected.X(), Y: p.Projected.Y()})
	}
	return polygon.BoundsOf(c)
}
