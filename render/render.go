// Package render draws frames of the construction tool into images.
//
// A frame is drawn back to front: the background, the construction lines of
// every level, the sampled curve, the intermediate points, the control points
// and finally the point on the curve. Geometry is given in logical
// coordinates and placed in the image by an affine transform, normally the
// one returned by [casteljau.Viewport.LogicalToScreen].
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"honnef.co/go/casteljau"
)

// Tolerance is the maximum deviation, in pixels, of flattened discs from true
// circles.
const Tolerance = 0.25

const maskCacheSize = 16

// Renderer draws frames. A Renderer keeps rasterization state between calls
// and must not be used concurrently.
type Renderer struct {
	style Style
	z     vector.Rasterizer
	masks *lru.Cache[maskKey, *image.Alpha]
	// scratch buffer for polygons
	poly []casteljau.Point
}

// New returns a renderer using the given style.
func New(style Style) *Renderer {
	masks, err := lru.New[maskKey, *image.Alpha](maskCacheSize)
	if err != nil {
		// Only fails for non-positive sizes.
		panic(err)
	}
	return &Renderer{
		style: style,
		masks: masks,
	}
}

// Style returns the renderer's style.
func (r *Renderer) Style() Style { return r.style }

// NewImage returns an image sized to hold the logical canvas at the given
// scale, along with the matching transform.
func NewImage(scale float64) (*image.RGBA, casteljau.Affine) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	sz := casteljau.Canvas.Size().Scale(scale)
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(sz.Width)), int(math.Ceil(sz.Height))))
	return img, casteljau.Scale(scale, scale)
}

// Render draws f into dst. xf maps logical coordinates to pixels of dst.
func (r *Renderer) Render(dst *image.RGBA, f casteljau.Frame, xf casteljau.Affine) {
	st := &r.style
	draw.Draw(dst, dst.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)

	scale := xf.UniformScale()

	for k, level := range f.Levels {
		if len(level) < 2 {
			continue
		}
		c := levelColor(st.Construction, k, len(f.Levels)-1)
		r.strokePolyline(dst, level, st.ConstructionWidth*scale, xf, c)
	}
	r.strokePolyline(dst, f.Curve, st.CurveWidth*scale, xf, st.Curve)

	for k, level := range f.Levels {
		if k == 0 {
			continue
		}
		for _, pt := range level {
			r.marker(dst, pt.Transform(xf), st.DerivedRadius*scale, st.Derived)
		}
	}
	for i, pt := range f.ControlPoints() {
		fill := st.Control
		if i == f.Dragging {
			fill = st.Active
		}
		c := pt.Transform(xf)
		r.marker(dst, c, (st.ControlRadius+st.OutlineWidth)*scale, st.Outline)
		r.marker(dst, c, st.ControlRadius*scale, fill)
	}
	if len(f.Levels) > 1 {
		if pt, ok := f.CurvePoint(); ok {
			r.marker(dst, pt.Transform(xf), st.ResultRadius*scale, st.Result)
		}
	}

	if !st.HideLabel {
		r.label(dst, fmt.Sprintf("t = %.2f  order = %d", f.T, f.Order))
	}
}

// levelColor fades c for deeper levels of the pyramid. Level 0 keeps c's
// alpha and every following level of the n stroked ones loses an equal step,
// down to half of it for the last.
func levelColor(c color.NRGBA, k, n int) color.NRGBA {
	if n <= 1 {
		return c
	}
	f := 1 - 0.5*float64(k)/float64(n-1)
	c.A = uint8(math.Round(float64(c.A) * f))
	return c
}

// strokePolyline strokes pts with round joins and caps. All pieces are
// accumulated in one rasterizer pass with the same orientation, so that
// overlaps are covered once.
func (r *Renderer) strokePolyline(dst *image.RGBA, pts []casteljau.Point, width float64, xf casteljau.Affine, c color.NRGBA) {
	if len(pts) == 0 || !(width > 0) || c.A == 0 {
		return
	}
	hw := width / 2

	bbox := casteljau.NewRectFromPoints(pts[0].Transform(xf), pts[0].Transform(xf))
	for _, pt := range pts[1:] {
		bbox = bbox.UnionPoint(pt.Transform(xf))
	}
	bounds, ok := r.clip(dst, bbox.Inflate(hw+1, hw+1))
	if !ok {
		return
	}
	origin := casteljau.Pt(float64(bounds.Min.X), float64(bounds.Min.Y))
	r.z.Reset(bounds.Dx(), bounds.Dy())

	prev := pts[0].Transform(xf)
	r.addDisc(casteljau.Circle{Center: prev, Radius: hw}, origin)
	for _, pt := range pts[1:] {
		seg := casteljau.Line{P0: prev, P1: pt.Transform(xf)}
		if seg.Length() > 0 {
			n := seg.P1.Sub(seg.P0).Normalize().Turn90().Mul(hw)
			r.poly = append(r.poly[:0],
				seg.P0.Translate(n),
				seg.P1.Translate(n),
				seg.P1.Translate(n.Negate()),
				seg.P0.Translate(n.Negate()),
			)
			r.addPolygon(r.poly, origin)
			r.addDisc(casteljau.Circle{Center: seg.P1, Radius: hw}, origin)
		}
		prev = seg.P1
	}
	r.z.Draw(dst, bounds, image.NewUniform(c), image.Point{})
}

// marker draws a filled disc centred on c, in pixel coordinates.
func (r *Renderer) marker(dst *image.RGBA, c casteljau.Point, radius float64, fill color.NRGBA) {
	if !(radius > 0) || fill.A == 0 || c.IsNaN() || c.IsInf() {
		return
	}
	key := newMaskKey(c, radius)
	mask, ok := r.masks.Get(key)
	if !ok {
		mask = r.rasterizeDisc(key)
		r.masks.Add(key, mask)
		casteljau.Logger().Debug("rasterized marker mask", slog.Float64("radius", radius))
	}
	// The mask is centred on the pixel grid offset stored in the key.
	at := image.Pt(int(math.Floor(c.X)), int(math.Floor(c.Y))).Sub(image.Pt(mask.Rect.Dx()/2, mask.Rect.Dy()/2))
	rect := mask.Rect.Add(at)
	draw.DrawMask(dst, rect, image.NewUniform(fill), image.Point{}, mask, image.Point{}, draw.Over)
}

// maskKey identifies a rasterized disc by its radius and the fractional part
// of its centre, both in quarter pixels.
type maskKey struct {
	radius int
	fx, fy int
}

func newMaskKey(c casteljau.Point, radius float64) maskKey {
	frac := func(f float64) int { return int(math.Floor((f - math.Floor(f)) * 4)) }
	return maskKey{
		radius: int(math.Round(radius * 4)),
		fx:     frac(c.X),
		fy:     frac(c.Y),
	}
}

func (r *Renderer) rasterizeDisc(key maskKey) *image.Alpha {
	radius := float64(key.radius) / 4
	half := int(math.Ceil(radius)) + 1
	size := 2 * half
	// Centre of the disc relative to the mask, matching the offset applied in
	// marker.
	c := casteljau.Pt(float64(half)+float64(key.fx)/4+0.125, float64(half)+float64(key.fy)/4+0.125)
	r.z.Reset(size, size)
	r.addDisc(casteljau.Circle{Center: c, Radius: radius}, casteljau.Point{})
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func (r *Renderer) addDisc(c casteljau.Circle, origin casteljau.Point) {
	r.poly = r.poly[:0]
	for pt := range c.Polygon(Tolerance) {
		r.poly = append(r.poly, pt)
	}
	r.addPolygon(r.poly, origin)
}

// addPolygon adds a closed polygon to the rasterizer, in negative orientation
// regardless of the order of pts. pts is reordered in place.
func (r *Renderer) addPolygon(pts []casteljau.Point, origin casteljau.Point) {
	if len(pts) < 3 {
		return
	}
	if signedArea(pts) > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	p := pts[0].Sub(origin)
	r.z.MoveTo(float32(p.X), float32(p.Y))
	for _, pt := range pts[1:] {
		p := pt.Sub(origin)
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
}

// signedArea computes the signed area of a polygon with the shoelace formula.
func signedArea(pts []casteljau.Point) float64 {
	var a float64
	prev := casteljau.Vec2(pts[len(pts)-1])
	for _, pt := range pts {
		v := casteljau.Vec2(pt)
		a += prev.Cross(v)
		prev = v
	}
	return a / 2
}

// clip converts a rectangle in pixel space to integer bounds within dst. It
// reports false if nothing is left.
func (r *Renderer) clip(dst *image.RGBA, rect casteljau.Rect) (image.Rectangle, bool) {
	if rect.IsNaN() {
		return image.Rectangle{}, false
	}
	b := dst.Bounds()
	rect = rect.Intersect(casteljau.Rect{
		X0: float64(b.Min.X),
		Y0: float64(b.Min.Y),
		X1: float64(b.Max.X),
		Y1: float64(b.Max.Y),
	}).Expand()
	out := image.Rect(int(rect.X0), int(rect.Y0), int(rect.X1), int(rect.Y1))
	return out, !out.Empty()
}

func (r *Renderer) label(dst *image.RGBA, s string) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(r.style.Label),
		Face: face,
		Dot:  fixed.P(dst.Bounds().Min.X+8, dst.Bounds().Min.Y+8+face.Ascent),
	}
	d.DrawString(s)
}

// EncodePNG writes img to w as a PNG image.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return nil
}
