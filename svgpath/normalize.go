package svgpath

import (
	"fmt"
	"strings"

	"github.com/npillmayer/geobox"
)

// Op is the type of a normalized segment.
type Op uint8

const (
	// Move starts a new subpath at Pts[0].
	Move Op = iota
	// Cubic is a cubic Bézier curve starting at the end of the previous
	// segment, with control points Pts[0] and Pts[1] and end point Pts[2].
	Cubic
)

// Segment is a normalized path segment in absolute coordinates.
type Segment struct {
	Op  Op
	Pts [3]geobox.Pair
}

func moveSeg(p geobox.Pair) Segment {
	return Segment{Op: Move, Pts: [3]geobox.Pair{p}}
}

func cubicSeg(c1, c2, end geobox.Pair) Segment {
	return Segment{Op: Cubic, Pts: [3]geobox.Pair{c1, c2, end}}
}

// lineSeg is a straight line from p to end as a degenerate cubic.
func lineSeg(p, end geobox.Pair) Segment {
	return cubicSeg(p, end, end)
}

// End is the point where the segment ends.
func (s Segment) End() geobox.Pair {
	if s.Op == Move {
		return s.Pts[0]
	}
	return s.Pts[2]
}

func (s Segment) String() string {
	if s.Op == Move {
		return fmt.Sprintf("M%s", s.Pts[0])
	}
	return fmt.Sprintf("C%s%s%s", s.Pts[0], s.Pts[1], s.Pts[2])
}

// AsString returns a normalized path as a (debugging) string.
func AsString(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// state is the accumulator threaded through normalization.
type state struct {
	pos    geobox.Pair // current point
	start  geobox.Pair // start of the current subpath
	ctrl   geobox.Pair // second control point of the last cubic
	qctrl  geobox.Pair // control point of the last quadratic
	prev   Kind        // kind of the previous command
	closed bool        // path is a single closed Catmull-Rom curve
}

// ParseAndNormalize parses path data and expands it to move and cubic
// segments. Malformed input yields an empty list.
//
// Results are memoized; callers must not modify the returned slice.
func ParseAndNormalize(s string) []Segment {
	cache := currentCache()
	if cache != nil {
		if segs, ok := cache.Get(s); ok {
			return segs
		}
	}
	cmds, err := Scan(s)
	if err != nil {
		tracer().Errorf("cannot normalize path: %v", err)
		return []Segment{}
	}
	segs := Normalize(cmds)
	if cache != nil {
		cache.Put(s, segs)
	}
	return segs
}

// Normalize expands pre-tokenized path commands to move and cubic segments
// in absolute coordinates. The result always starts with a move; a path not
// starting with a move command starts at (0,0). Invalid input yields an
// empty list.
func Normalize(cmds []Command) []Segment {
	if len(cmds) == 0 {
		return []Segment{}
	}
	segs := make([]Segment, 0, len(cmds)+1)
	st := state{closed: isClosedCatmullRom(cmds)}
	if cmds[0].Kind != MoveTo {
		segs = append(segs, moveSeg(geobox.Origin))
	}
	for i, cmd := range cmds {
		if !cmd.Valid() {
			tracer().Errorf("invalid path command #%d: %s", i, cmd)
			return []Segment{}
		}
		var out []Segment
		st, out = st.step(cmd)
		segs = append(segs, out...)
	}
	tracer().Debugf("normalized path = %s", AsString(segs))
	return segs
}

// step normalizes a single command and returns the successor state together
// with the segments the command expands to.
func (st state) step(cmd Command) (state, []Segment) {
	a := st.absolute(cmd)
	var out []Segment
	next := st
	switch a.Kind {
	case MoveTo:
		p := geobox.P(a.Args[0], a.Args[1])
		next.start = p
		out = []Segment{moveSeg(p)}
	case LineTo:
		out = []Segment{lineSeg(st.pos, geobox.P(a.Args[0], a.Args[1]))}
	case HLineTo:
		out = []Segment{lineSeg(st.pos, geobox.P(a.Args[0], st.pos.Y()))}
	case VLineTo:
		out = []Segment{lineSeg(st.pos, geobox.P(st.pos.X(), a.Args[0]))}
	case CubicTo:
		out = []Segment{cubicSeg(
			geobox.P(a.Args[0], a.Args[1]),
			geobox.P(a.Args[2], a.Args[3]),
			geobox.P(a.Args[4], a.Args[5]))}
	case SmoothCubicTo:
		c1 := st.pos
		if st.prev == CubicTo || st.prev == SmoothCubicTo {
			c1 = reflect(st.ctrl, st.pos)
		}
		out = []Segment{cubicSeg(c1,
			geobox.P(a.Args[0], a.Args[1]),
			geobox.P(a.Args[2], a.Args[3]))}
	case QuadTo:
		q := geobox.P(a.Args[0], a.Args[1])
		next.qctrl = q
		out = []Segment{quadSeg(st.pos, q, geobox.P(a.Args[2], a.Args[3]))}
	case SmoothQuadTo:
		q := st.pos
		if st.prev == QuadTo || st.prev == SmoothQuadTo {
			q = reflect(st.qctrl, st.pos)
		}
		next.qctrl = q
		out = []Segment{quadSeg(st.pos, q, geobox.P(a.Args[0], a.Args[1]))}
	case ArcTo:
		out = arcToCubics(st.pos, geobox.P(a.Args[5], a.Args[6]),
			a.Args[0], a.Args[1], a.Args[2], a.Args[3] != 0, a.Args[4] != 0)
	case Close:
		out = []Segment{lineSeg(st.pos, st.start)}
	case CatmullRomTo:
		pts := make([]geobox.Pair, 0, len(a.Args)/2+1)
		pts = append(pts, st.pos)
		for i := 0; i+1 < len(a.Args); i += 2 {
			pts = append(pts, geobox.P(a.Args[i], a.Args[i+1]))
		}
		out = catmullRomToCubics(pts, st.closed)
	}
	switch {
	case a.Kind == Close:
		next.pos = st.start
	case a.Kind == ArcTo: // the arc may be omitted, but still moves the pen
		next.pos = geobox.P(a.Args[5], a.Args[6])
	case len(out) > 0:
		next.pos = out[len(out)-1].End()
	}
	next.ctrl = next.pos
	if n := len(out); n > 0 && out[n-1].Op == Cubic {
		next.ctrl = out[n-1].Pts[1]
	}
	next.prev = a.Kind
	return next, out
}

// absolute converts the arguments of a relative command to absolute
// coordinates, relative to the current point.
func (st state) absolute(cmd Command) Command {
	if !cmd.Relative {
		return cmd
	}
	x, y := st.pos.X(), st.pos.Y()
	args := make([]float64, len(cmd.Args))
	copy(args, cmd.Args)
	switch cmd.Kind {
	case HLineTo:
		args[0] += x
	case VLineTo:
		args[0] += y
	case ArcTo:
		args[5] += x
		args[6] += y
	default:
		for i := 0; i+1 < len(args); i += 2 {
			args[i] += x
			args[i+1] += y
		}
	}
	return Command{Kind: cmd.Kind, Args: args}
}

// reflect mirrors control point c about point p.
func reflect(c, p geobox.Pair) geobox.Pair {
	return p.Scaled(2) - c
}

// quadSeg elevates the quadratic Bézier (p0,q,p2) to a cubic.
func quadSeg(p0, q, p2 geobox.Pair) Segment {
	c1 := p0.Scaled(1.0/3) + q.Scaled(2.0/3)
	c2 := p2.Scaled(1.0/3) + q.Scaled(2.0/3)
	return cubicSeg(c1, c2, p2)
}

// isClosedCatmullRom is a predicate: is the path exactly a move, one
// Catmull-Rom command and a close command?
func isClosedCatmullRom(cmds []Command) bool {
	return len(cmds) == 3 && cmds[0].Kind == MoveTo &&
		cmds[1].Kind == CatmullRomTo && cmds[2].Kind == Close
}
