package stroke

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/npillmayer/geobox"
	"gopkg.in/yaml.v3"
)

// LineJoin is the shape at the corners of a stroked line.
type LineJoin string

// Line joins
const (
	JoinMiter LineJoin = "miter"
	JoinBevel LineJoin = "bevel"
	JoinRound LineJoin = "round"
)

// LineCap is the shape at the ends of an open stroked line.
type LineCap string

// Line caps
const (
	CapButt   LineCap = "butt"
	CapRound  LineCap = "round"
	CapSquare LineCap = "square"
)

var (
	// ErrWidth is flagged for a negative or non-finite stroke width.
	ErrWidth = errors.New("invalid stroke width")
	// ErrMiterLimit is flagged for a miter limit below 1.
	ErrMiterLimit = errors.New("miter limit must be at least 1")
	// ErrScale is flagged for a zero or non-finite scale factor.
	ErrScale = errors.New("invalid scale factor")
	// ErrSkew is flagged for non-finite skew angles.
	ErrSkew = errors.New("invalid skew angle")
	// ErrLineJoin is flagged for an unknown line join.
	ErrLineJoin = errors.New("unknown line join")
	// ErrLineCap is flagged for an unknown line cap.
	ErrLineCap = errors.New("unknown line cap")
)

// Options control stroke projection. Skew angles are in degrees.
type Options struct {
	Width      float64  `yaml:"width"`
	LineJoin   LineJoin `yaml:"line_join"`
	LineCap    LineCap  `yaml:"line_cap"`
	MiterLimit float64  `yaml:"miter_limit"`
	Uniform    bool     `yaml:"uniform"`
	ScaleX     float64  `yaml:"scale_x"`
	ScaleY     float64  `yaml:"scale_y"`
	SkewX      float64  `yaml:"skew_x"`
	SkewY      float64  `yaml:"skew_y"`
}

// DefaultOptions returns options for a 1-unit wide, mitered, butt-capped
// stroke without any transformation.
func DefaultOptions() Options {
	return Options{
		Width:      1,
		LineJoin:   JoinMiter,
		LineCap:    CapButt,
		MiterLimit: 4,
		ScaleX:     1,
		ScaleY:     1,
	}
}

// Validate checks options for values the projection math cannot honour.
// Projection itself tolerates invalid options by falling back to defaults;
// Validate lets clients detect them early.
func (o Options) Validate() error {
	if o.Width < 0 || !geobox.IsFinite(o.Width) {
		return fmt.Errorf("%w: %g", ErrWidth, o.Width)
	}
	if o.MiterLimit < 1 || math.IsNaN(o.MiterLimit) {
		return fmt.Errorf("%w: %g", ErrMiterLimit, o.MiterLimit)
	}
	if o.ScaleX == 0 || o.ScaleY == 0 || !geobox.IsFinite(o.ScaleX) || !geobox.IsFinite(o.ScaleY) {
		return fmt.Errorf("%w: (%g,%g)", ErrScale, o.ScaleX, o.ScaleY)
	}
	if !geobox.IsFinite(o.SkewX) || !geobox.IsFinite(o.SkewY) {
		return fmt.Errorf("%w: (%g,%g)", ErrSkew, o.SkewX, o.SkewY)
	}
	switch o.LineJoin {
	case JoinMiter, JoinBevel, JoinRound:
	default:
		return fmt.Errorf("%w: %q", ErrLineJoin, o.LineJoin)
	}
	switch o.LineCap {
	case CapButt, CapRound, CapSquare:
	default:
		return fmt.Errorf("%w: %q", ErrLineCap, o.LineCap)
	}
	return nil
}

// LoadOptions reads stroke options from YAML. Keys missing from the input
// keep their default values. The result is validated.
//
//	width: 4
//	line_join: round
//	uniform: true
//	scale_x: 2
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	data, err := io.ReadAll(r)
	if err != nil {
		return opts, fmt.Errorf("reading stroke options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("decoding stroke options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return DefaultOptions(), err
	}
	return opts, nil
}

// SaveOptions writes stroke options as YAML.
func SaveOptions(w io.Writer, opts Options) error {
	data, err := yaml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encoding stroke options: %w", err)
	}
	_, err = w.Write(data)
	return err
}
