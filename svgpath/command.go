package svgpath

import (
	"fmt"
	"strings"

	"github.com/npillmayer/geobox"
)

// Kind is the type of a path command, denoted by its upper case letter.
type Kind byte

// Path command kinds.
const (
	MoveTo        Kind = 'M'
	LineTo        Kind = 'L'
	HLineTo       Kind = 'H'
	VLineTo       Kind = 'V'
	CubicTo       Kind = 'C'
	SmoothCubicTo Kind = 'S'
	QuadTo        Kind = 'Q'
	SmoothQuadTo  Kind = 'T'
	ArcTo         Kind = 'A'
	Close         Kind = 'Z'
	CatmullRomTo  Kind = 'R'
)

const variableArity = -1

// Arity returns the number of numeric arguments of a command kind, or -1
// for kinds taking a variable number of arguments.
func (k Kind) Arity() int {
	switch k {
	case Close:
		return 0
	case HLineTo, VLineTo:
		return 1
	case MoveTo, LineTo, SmoothQuadTo:
		return 2
	case QuadTo, SmoothCubicTo:
		return 4
	case CubicTo:
		return 6
	case ArcTo:
		return 7
	case CatmullRomTo:
		return variableArity
	}
	return 0
}

func kindOf(c byte) (Kind, bool, bool) {
	rel := c >= 'a' && c <= 'z'
	if rel {
		c -= 'a' - 'A'
	}
	switch k := Kind(c); k {
	case MoveTo, LineTo, HLineTo, VLineTo, CubicTo, SmoothCubicTo,
		QuadTo, SmoothQuadTo, ArcTo, Close, CatmullRomTo:
		return k, rel, true
	}
	return 0, false, false
}

// Command is a single path command with its arguments. Relative commands
// carry coordinates relative to the current point.
type Command struct {
	Kind     Kind
	Relative bool
	Args     []float64
}

// Cmd is a quick notation for an absolute command.
func Cmd(k Kind, args ...float64) Command {
	return Command{Kind: k, Args: args}
}

// Rel is a quick notation for a relative command.
func Rel(k Kind, args ...float64) Command {
	return Command{Kind: k, Relative: true, Args: args}
}

// Letter returns the command letter, lower case for relative commands.
func (c Command) Letter() byte {
	if c.Relative {
		return byte(c.Kind) + 'a' - 'A'
	}
	return byte(c.Kind)
}

// Valid is a predicate: does the command carry a legal number of finite
// arguments?
func (c Command) Valid() bool {
	for _, a := range c.Args {
		if !geobox.IsFinite(a) {
			return false
		}
	}
	n := c.Kind.Arity()
	if n == variableArity {
		return len(c.Args) >= 2 && len(c.Args)%2 == 0
	}
	return len(c.Args) == n
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteByte(c.Letter())
	for _, a := range c.Args {
		fmt.Fprintf(&b, " %g", a)
	}
	return b.String()
}
