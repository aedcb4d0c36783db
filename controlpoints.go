package casteljau

import (
	"math"
	"slices"
)

// Layout returns the initial control points for a curve of the given order:
// order+1 points on a half-sine arc spanning x ∈ [50, 750], peaking at y =
// 50. order is clamped with [ClampOrder].
func Layout(order int) []Point {
	order = ClampOrder(order)
	n := float64(order)
	pts := make([]Point, order+1)
	for i := range pts {
		fi := float64(i)
		pts[i] = Point{
			X: 50 + fi*700/n,
			Y: 200 - math.Sin(fi*math.Pi/n)*150,
		}
	}
	return pts
}

// ControlPoints is the ordered control point sequence of a curve. It always
// holds order+1 ≥ 2 points that lie within [Canvas].
//
// Every change produces a new sequence and increments the revision, so slices
// returned by Points are never modified afterwards and the revision can be
// used to detect changes.
type ControlPoints struct {
	points   []Point
	order    int
	revision uint64
}

// NewControlPoints returns control points laid out for the given order.
func NewControlPoints(order int) *ControlPoints {
	cp := &ControlPoints{}
	cp.SetOrder(order)
	return cp
}

// SetOrder clamps n to [MinOrder, MaxOrder] and replaces all control points
// with the layout for that order. Previous positions, including those set by
// MovePoint, are discarded, even if the order didn't change.
func (cp *ControlPoints) SetOrder(n int) {
	cp.order = ClampOrder(n)
	cp.points = Layout(cp.order)
	cp.revision++
}

// MovePoint moves the control point at index to p, clamped to [Canvas]. All
// other points are left untouched. It does nothing and returns false if index
// is out of range or p has NaN coordinates.
func (cp *ControlPoints) MovePoint(index int, p Point) bool {
	if index < 0 || index >= len(cp.points) || p.IsNaN() {
		return false
	}
	points := slices.Clone(cp.points)
	points[index] = p.Clamp(Canvas)
	cp.points = points
	cp.revision++
	return true
}

// Points returns the current control points. The slice must not be modified.
func (cp *ControlPoints) Points() []Point { return cp.points }

// Order returns the curve's order, one less than the number of points.
func (cp *ControlPoints) Order() int { return cp.order }

// Len returns the number of control points.
func (cp *ControlPoints) Len() int { return len(cp.points) }

// Revision returns a number that changes whenever the sequence is replaced.
func (cp *ControlPoints) Revision() uint64 { return cp.revision }
