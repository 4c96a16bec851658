package svgpath

import (
	"github.com/npillmayer/geobox"
	"github.com/npillmayer/geobox/bezier"
)

// BoundsOfPath returns the exact bounding box of the path given as path
// data. Malformed or empty paths yield the zero box.
func BoundsOfPath(s string) geobox.Box {
	return BoundsOfSegments(ParseAndNormalize(s))
}

// BoundsOfCommands returns the exact bounding box of a pre-tokenized path.
func BoundsOfCommands(cmds []Command) geobox.Box {
	return BoundsOfSegments(Normalize(cmds))
}

// BoundsOfSegments returns the exact bounding box of a normalized path.
//
// A first pass spans a box over the end points of all cubic segments. Only
// segments with a control point or end point outside of the box accumulated
// so far are then handed to the exact solver. If there is no cubic segment
// the zero box is returned.
func BoundsOfSegments(segs []Segment) geobox.Box {
	var box geobox.Box
	found := false
	var pos geobox.Pair
	for _, s := range segs {
		if s.Op == Cubic {
			if !found {
				box, found = geobox.BoxOf(pos), true
			}
			box = box.Extend(pos).Extend(s.Pts[2])
		}
		pos = s.End()
	}
	if !found {
		return geobox.Box{}
	}
	solved := 0
	pos = geobox.Origin
	for _, s := range segs {
		if s.Op == Cubic && !(box.Contains(s.Pts[0]) && box.Contains(s.Pts[1]) && box.Contains(s.Pts[2])) {
			box = box.Union(bezier.BoundsOfCubic(pos, s.Pts[0], s.Pts[1], s.Pts[2]))
			solved++
		}
		pos = s.End()
	}
	tracer().Debugf("bounds of %d segments (%d solved) = %v", len(segs), solved, box)
	return box
}

// Translate returns a copy of segs with every point shifted by offset.
func Translate(segs []Segment, offset geobox.Pair) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = s
		n := 1
		if s.Op == Cubic {
			n = 3
		}
		for j := 0; j < n; j++ {
			out[i].Pts[j] = s.Pts[j] + offset
		}
	}
	return out
}
