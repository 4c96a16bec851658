package stroke_test

import (
	"fmt"

	"github.com/npillmayer/geobox"
	"github.com/npillmayer/geobox/stroke"
)

func ExampleStrokeBounds() {
	opts := stroke.DefaultOptions()
	opts.Width = 2
	line := []geobox.Pair{geobox.P(0, 0), geobox.P(10, 0)}
	fmt.Println(stroke.StrokeBounds(line, opts, true))
	opts.LineCap = stroke.CapSquare
	fmt.Println(stroke.StrokeBounds(line, opts, true))
	// Output:
	// [(0,-1)-(10,1) 10x2]
	// [(-1,-1)-(11,1) 12x2]
}
