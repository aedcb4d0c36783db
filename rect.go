package casteljau

import (
	"math"
)

// Rect is an axis-aligned rectangle spanning from (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle with corners p0 and p1, normalized
// by [Rect.Abs].
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns the rectangle of the given size whose top left
// corner, for positive sizes, is origin.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// Abs swaps coordinates as needed so that neither width nor height is
// negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Origin returns (X0, Y0), the top left corner of a normalized rectangle in
// y-down space.
func (r Rect) Origin() Point {
	return Pt(r.X0, r.Y0)
}

// Width returns X1 − X0, which is negative for unnormalized rectangles.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 − Y0, which is negative for unnormalized rectangles.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Size() Size {
	return Sz(r.Width(), r.Height())
}

// UnionPoint grows r to include pt. Starting from a zero-area rectangle at
// the first point, folding UnionPoint over the rest yields their bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Intersect returns the overlap of r and o. Disjoint rectangles produce a
// zero-area result.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X0, o.X0), max(r.Y0, o.Y0)
	x1, y1 := min(r.X1, o.X1), min(r.Y1, o.Y1)
	return Rect{
		X0: x0,
		Y0: y0,
		X1: max(x0, x1),
		Y1: max(y0, y1),
	}
}

// Inflate moves every edge outwards, by dx horizontally and dy vertically.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{
		X0: r.X0 - dx,
		Y0: r.Y0 - dy,
		X1: r.X1 + dx,
		Y1: r.Y1 + dy,
	}
}

// Expand rounds every edge outwards to the next integer, returning the
// smallest pixel-aligned rectangle containing r.
func (r Rect) Expand() Rect {
	out := func(lo, hi float64) (float64, float64) {
		if lo < hi {
			return math.Floor(lo), math.Ceil(hi)
		}
		return math.Ceil(lo), math.Floor(hi)
	}
	x0, x1 := out(r.X0, r.X1)
	y0, y1 := out(r.Y0, r.Y1)
	return Rect{x0, y0, x1, y1}
}

// AspectRatio returns height divided by width. See [Size.AspectRatio].
func (r Rect) AspectRatio() float64 {
	return r.Size().AspectRatio()
}

// ContainedRectWithAspectRatio returns the largest rectangle with the given
// aspect ratio (height / width) that fits in r, centered along the axis that
// has room to spare.
func (r Rect) ContainedRectWithAspectRatio(aspectRatio float64) Rect {
	width, height := r.Width(), r.Height()
	rAspect := height / width

	switch {
	case math.Abs(rAspect-aspectRatio) < 1e-9:
		return r
	case math.Abs(rAspect) < math.Abs(aspectRatio):
		// too wide
		gap := (width - height/aspectRatio) * 0.5
		return Rect{r.X0 + gap, r.Y0, r.X1 - gap, r.Y1}
	default:
		// too tall
		gap := (height - width*aspectRatio) * 0.5
		return Rect{r.X0, r.Y0 + gap, r.X1, r.Y1 - gap}
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}
