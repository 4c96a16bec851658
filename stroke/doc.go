/*
Package stroke projects the outline of a stroked polygon or polyline onto
outward boundary points, from which a stroke-inflated bounding box is
derived.

For every vertex of a point list, the stroke outline is approximated by a
handful of candidate points: a vertex in the middle of a line (or any vertex
of a closed shape) is treated as a line join, the first and last vertex of an
open line are treated as line caps. Joins may be mitered, beveled or round,
caps may be butt, round or square, as known from vector graphics formats.

	opts := stroke.DefaultOptions()
	opts.Width = 4
	opts.LineJoin = stroke.JoinRound
	box := stroke.StrokeBounds(points, opts, true)

Projections honour an object's scale and skew. Skew is always applied as the
last step, so results live in the coordinate space of the input points. In
stroke-uniform mode the stroke keeps its width on screen regardless of the
object's scale, which means angles are measured in rendered space while
offsets are compensated in local space.

Degenerate input never produces NaN or infinite coordinates: coincident
points, zero-length tangents and zero stroke width yield no projection for
the affected vertex.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package stroke

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geobox.stroke'
func tracer() tracing.Trace {
	return tracing.Select("geobox.stroke")
}
