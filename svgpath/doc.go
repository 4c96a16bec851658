/*
Package svgpath normalizes vector path data and computes its exact bounding
box.

Path data is written in the path mini-language widely used for vector
graphics:

	M 10 10 h 20 q 10 0 10 10 a 5 5 0 0 1 -5 5 z

Commands may be absolute (upper case) or relative (lower case). Numbers are
separated by whitespace and/or commas, and a command letter may be followed by
several argument groups, repeating the command. An additional command 'R'
(relative 'r') interprets its arguments as a Catmull-Rom spline through the
current point and the given points.

Normalization converts every command to absolute coordinates and expands it
to a sequence of cubic Bézier segments, so that a path becomes a list of
move and cubic segments only:

	segs := svgpath.ParseAndNormalize("M0,0 Q5,10 10,0 T20,0")
	box := svgpath.BoundsOfSegments(segs)

Lines are represented as degenerate cubics, quadratic curves are elevated,
shorthand curves reflect the previous control point, and elliptical arcs are
approximated by cubics spanning no more than 120 degrees each.

The engine entry points never fail: malformed input degrades to an empty
segment list and a zero box. Clients interested in the reason may call Scan,
which reports syntax errors.

Results of ParseAndNormalize are memoized in a bounded cache keyed by the path
string. The cache may be resized or cleared at any time without affecting
results.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package svgpath

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geobox.path'
func tracer() tracing.Trace {
	return tracing.Select("geobox.path")
}

var (
	// ErrUnknownCommand indicates a character which is not a path command.
	ErrUnknownCommand = errors.New("unknown path command")
	// ErrArity indicates a command with a wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments for path command")
	// ErrNumber indicates a malformed number or a number out of range.
	ErrNumber = errors.New("malformed number in path data")
	// ErrFlag indicates an arc flag which is neither 0 nor 1.
	ErrFlag = errors.New("arc flag must be 0 or 1")
)
