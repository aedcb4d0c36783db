package casteljau

import (
	"errors"
)

// The logical canvas all geometry is expressed in.
const (
	CanvasWidth  = 800
	CanvasHeight = 400
)

// Canvas is the logical drawing area. Control points are kept inside it.
var Canvas = Rect{0, 0, CanvasWidth, CanvasHeight}

// ErrEmptySequence is returned when evaluating a curve without control
// points.
var ErrEmptySequence = errors.New("casteljau: empty control point sequence")

// Evaluate returns the point at parameter t on the Bézier curve defined by
// points, using De Casteljau's algorithm. Any number of control points is
// supported; a single point describes a constant curve.
//
// It returns ErrEmptySequence if points is empty. points is not modified.
func Evaluate(t float64, points []Point) (Point, error) {
	switch len(points) {
	case 0:
		return Point{}, ErrEmptySequence
	case 1:
		return points[0], nil
	}
	buf := make([]Point, len(points))
	copy(buf, points)
	return reduce(t, buf), nil
}

// MustEvaluate is like [Evaluate] but panics if points is empty.
func MustEvaluate(t float64, points []Point) Point {
	pt, err := Evaluate(t, points)
	if err != nil {
		panic(err)
	}
	return pt
}

// reduce runs De Casteljau's algorithm in place. buf must not be empty.
func reduce(t float64, buf []Point) Point {
	for n := len(buf) - 1; n > 0; n-- {
		for i := range n {
			buf[i] = Line{buf[i], buf[i+1]}.Eval(t)
		}
	}
	return buf[0]
}

// Levels returns all levels of De Casteljau's algorithm at parameter t,
// commonly called the construction pyramid. The first level is points itself,
// every following level has one point fewer than its predecessor, with each
// point interpolating two adjacent points of the previous level. The last
// level contains a single point, the curve's value at t.
//
// For zero or one points, the result is a single level containing points.
//
// Levels computes exactly the same values as [Evaluate], so the last point of
// the last level is identical to Evaluate's result.
func Levels(t float64, points []Point) [][]Point {
	if len(points) <= 1 {
		return [][]Point{points}
	}
	levels := make([][]Point, 0, len(points))
	levels = append(levels, points)
	// A single backing array holds all derived levels, len(points)-1 + ... + 1 points.
	n := len(points) - 1
	backing := make([]Point, n*(n+1)/2)
	prev := points
	for len(prev) > 1 {
		m := len(prev) - 1
		next := backing[:m:m]
		backing = backing[m:]
		for i := range next {
			next[i] = Line{prev[i], prev[i+1]}.Eval(t)
		}
		levels = append(levels, next)
		prev = next
	}
	return levels
}

// Subdivide splits the curve defined by points at parameter t into two
// curves of the same order, covering [0, t] and [t, 1] respectively. The
// control points of the halves are the outer edges of the construction
// pyramid: the first point of every level for the left half and the last
// point of every level, in reverse, for the right half. Both halves share the
// point on the curve at t.
//
// It returns ErrEmptySequence if points is empty.
func Subdivide(t float64, points []Point) (left, right []Point, err error) {
	if len(points) == 0 {
		return nil, nil, ErrEmptySequence
	}
	left, right = halves(Levels(t, points))
	return left, right, nil
}

// halves reads the control points of both halves off a construction
// pyramid. It returns nil slices if the pyramid has no points.
func halves(levels [][]Point) (left, right []Point) {
	if len(levels) == 0 || len(levels[0]) == 0 {
		return nil, nil
	}
	n := len(levels)
	left = make([]Point, n)
	right = make([]Point, n)
	for k, level := range levels {
		left[k] = level[0]
		right[n-1-k] = level[len(level)-1]
	}
	return left, right
}
