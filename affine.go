package casteljau

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Hosts use an Affine to describe how the logical canvas is placed on screen.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale returns a transform scaling x and y by the given factors.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// ThenTranslate returns aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform. A singular transform inverts to
// NaN or infinite coefficients.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// UniformScale returns the scale factor of a transform that scales both axes
// by the same amount, such as the ones produced by [Viewport]. For other
// transforms it returns the geometric mean of the axis scales.
func (aff Affine) UniformScale() float64 {
	return math.Sqrt(math.Abs(aff.Determinant()))
}
