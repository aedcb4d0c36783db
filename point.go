package casteljau

import (
	"fmt"
	"math"
)

// Point is a position in the logical coordinate space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points, computing (1-t)*pt + t*o
// for each coordinate.
//
// The two-product form is used instead of pt + t*(o-pt) so that t = 0 and t
// = 1 reproduce the end points exactly.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: (1-t)*pt.X + t*o.X,
		Y: (1-t)*pt.Y + t*o.Y,
	}
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Clamp returns the point closest to pt that lies within r, including r's
// edges. r must have non-negative width and height.
func (pt Point) Clamp(r Rect) Point {
	return Point{
		X: min(max(pt.X, r.X0), r.X1),
		Y: min(max(pt.Y, r.Y0), r.Y1),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
