package svgpath

import (
	"fmt"

	"github.com/npillmayer/geobox"
	"github.com/tdewolff/parse/v2/strconv"
)

// Scan splits path data into commands. A command letter followed by more
// argument groups than its arity is repeated for every group; surplus
// coordinate pairs after a move become implicit line commands.
//
// On a syntax error Scan returns the commands recognized so far together
// with the error.
func Scan(s string) ([]Command, error) {
	b := []byte(s)
	var cmds []Command
	i := skipCommaWhitespace(b, 0)
	for i < len(b) {
		kind, rel, ok := kindOf(b[i])
		if !ok {
			return cmds, fmt.Errorf("%w '%c' at position %d", ErrUnknownCommand, b[i], i+1)
		}
		letter := b[i]
		i = skipCommaWhitespace(b, i+1)
		switch n := kind.Arity(); n {
		case 0:
			cmds = append(cmds, Command{Kind: kind, Relative: rel})
		case variableArity:
			var args []float64
			for i < len(b) && isNumberStart(b[i]) {
				f, k, err := scanNumber(b, i)
				if err != nil {
					return cmds, fmt.Errorf("%w for '%c' at position %d", err, letter, i+1)
				}
				args = append(args, f)
				i = skipCommaWhitespace(b, i+k)
			}
			c := Command{Kind: kind, Relative: rel, Args: args}
			if !c.Valid() {
				return cmds, fmt.Errorf("%w: '%c' needs coordinate pairs, got %d numbers", ErrArity, letter, len(args))
			}
			cmds = append(cmds, c)
		default:
			first := true
			for first || (i < len(b) && isNumberStart(b[i])) {
				args := make([]float64, n)
				var err error
				if i, err = scanGroup(b, i, kind, args); err != nil {
					return cmds, fmt.Errorf("%w: command '%c' at position %d", err, letter, i+1)
				}
				k := kind
				if kind == MoveTo && !first {
					k = LineTo
				}
				cmds = append(cmds, Command{Kind: k, Relative: rel, Args: args})
				first = false
			}
		}
	}
	tracer().Debugf("scanned %d path commands", len(cmds))
	return cmds, nil
}

// MustScan is a convenience helper which panics on syntax errors.
func MustScan(s string) []Command {
	cmds, err := Scan(s)
	if err != nil {
		panic(err)
	}
	return cmds
}

// scanGroup reads one complete argument group for a command of kind k into
// args and returns the position after it.
func scanGroup(b []byte, i int, k Kind, args []float64) (int, error) {
	for j := range args {
		if i >= len(b) {
			return i, ErrArity
		}
		if k == ArcTo && (j == 3 || j == 4) {
			switch b[i] {
			case '0':
				args[j] = 0
			case '1':
				args[j] = 1
			default:
				return i, ErrFlag
			}
			i = skipCommaWhitespace(b, i+1)
			continue
		}
		f, n, err := scanNumber(b, i)
		if err != nil {
			return i, err
		}
		args[j] = f
		i = skipCommaWhitespace(b, i+n)
	}
	return i, nil
}

// scanNumber reads a number at position i and returns it together with its
// length in bytes. Numbers out of the range of float64 are rejected.
func scanNumber(b []byte, i int) (float64, int, error) {
	f, n := strconv.ParseFloat(b[i:])
	if n == 0 {
		return 0, 0, ErrNumber
	}
	if !geobox.IsFinite(f) {
		return 0, 0, fmt.Errorf("%w: %s out of range", ErrNumber, b[i:i+n])
	}
	return f, n, nil
}

func skipCommaWhitespace(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t' || b[i] == '\f') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}
