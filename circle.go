package casteljau

import (
	"iter"
	"math"
)

// Circle describes the disc of a point marker.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

// Polygon returns the vertices of a regular polygon inscribed in the circle,
// with enough vertices that no edge deviates from the circle by more than
// tolerance. Vertices are produced in order of increasing angle, starting at
// angle 0.
func (c Circle) Polygon(tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		r := math.Abs(c.Radius)
		n := 8
		if tolerance > 0 && tolerance < r {
			// The sagitta of a chord spanning angle θ is r(1 - cos(θ/2)).
			th := 2 * math.Acos(1-tolerance/r)
			n = max(n, int(math.Ceil(2*math.Pi/th)))
		}
		for i := range n {
			s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
			if !yield(Pt(c.Center.X+r*co, c.Center.Y+r*s)) {
				return
			}
		}
	}
}
