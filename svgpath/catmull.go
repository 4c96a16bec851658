package svgpath

import "github.com/npillmayer/geobox"

// catmullRomToCubics converts a Catmull-Rom spline through pts to cubic
// segments. Every segment pts[i] → pts[i+1] is shaped by its neighbours
// pts[i-1] and pts[i+2]. Open splines repeat their first and last point
// where a neighbour is missing, closed splines wrap around and include a
// final segment back to pts[0].
func catmullRomToCubics(pts []geobox.Pair, closed bool) []Segment {
	n := len(pts)
	if n < 2 {
		return nil
	}
	at := func(i int) geobox.Pair {
		if closed {
			return pts[((i%n)+n)%n]
		}
		return pts[min(max(i, 0), n-1)]
	}
	count := n - 1
	if closed {
		count = n
	}
	segs := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		c1 := (p1.Scaled(6) + p2 - p0).Scaled(1.0 / 6)
		c2 := (p2.Scaled(6) + p1 - p3).Scaled(1.0 / 6)
		segs = append(segs, cubicSeg(c1, c2, p2))
	}
	return segs
}
