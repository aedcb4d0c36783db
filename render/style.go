package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Style controls the appearance of a rendered frame. Widths and radii are in
// logical units and scale with the frame.
type Style struct {
	Background color.NRGBA
	// Curve is the colour of the sampled curve.
	Curve color.NRGBA
	// Construction is the colour of the lines connecting points of the same
	// level.
	Construction color.NRGBA
	// Control is the fill of control point markers.
	Control color.NRGBA
	// Active is the fill of the control point being dragged.
	Active color.NRGBA
	// Outline surrounds control point markers.
	Outline color.NRGBA
	// Derived is the fill of intermediate points.
	Derived color.NRGBA
	// Result is the fill of the point on the curve at t.
	Result color.NRGBA
	Label  color.NRGBA

	CurveWidth        float64
	ConstructionWidth float64
	ControlRadius     float64
	OutlineWidth      float64
	DerivedRadius     float64
	ResultRadius      float64
	// HideLabel disables the parameter readout in the top left corner.
	HideLabel bool
}

// DefaultStyle returns the default style.
func DefaultStyle() Style {
	return Style{
		Background:        color.NRGBA{0xff, 0xff, 0xff, 0xff},
		Curve:             color.NRGBA{0x1f, 0x6f, 0xeb, 0xff},
		Construction:      color.NRGBA{0x80, 0x80, 0x80, 0x60},
		Control:           color.NRGBA{0xe3, 0x4c, 0x26, 0xff},
		Active:            color.NRGBA{0xff, 0xa6, 0x00, 0xff},
		Outline:           color.NRGBA{0x30, 0x30, 0x30, 0xff},
		Derived:           color.NRGBA{0x99, 0x99, 0x99, 0xff},
		Result:            color.NRGBA{0x10, 0x10, 0x10, 0xff},
		Label:             color.NRGBA{0x30, 0x30, 0x30, 0xff},
		CurveWidth:        3,
		ConstructionWidth: 1,
		ControlRadius:     8,
		OutlineWidth:      1.5,
		DerivedRadius:     3,
		ResultRadius:      5,
	}
}

// ParseColor parses colours of the form #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("colour %q doesn't start with #", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("colour %q has invalid length", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor formats c as #rrggbbaa.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
