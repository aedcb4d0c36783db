package casteljau

// Size is the extent of a rectangle or a surface.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{X: sz.Width, Y: sz.Height}
}

// Scale returns the size scaled by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// IsEmpty reports whether the size has no area, which includes negative and
// NaN dimensions.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0 && sz.Height > 0)
}

// AspectRatio returns height divided by width. A zero width yields an
// infinity, and an empty size yields NaN.
func (sz Size) AspectRatio() float64 {
	return sz.Height / sz.Width
}
