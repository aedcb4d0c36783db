package casteljau

// Line is a line segment, the curve of order 1.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at parameter t, the linear interpolation of the end
// points. Every point of the construction pyramid is one such step.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}
