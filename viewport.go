package casteljau

// Surface translates pointer positions into the logical coordinate space.
type Surface interface {
	// ScreenToLogical maps a screen position to the logical canvas. It
	// reports false if the mapping isn't currently known, for example
	// because the surface hasn't been laid out yet.
	ScreenToLogical(screen Point) (Point, bool)
}

// Viewport places the logical canvas into a container on screen, scaling it
// uniformly and centering it along the axis that has room to spare, like an
// image with "object-fit: contain".
//
// The zero value describes a surface that hasn't been measured yet.
type Viewport struct {
	// Container is the on-screen box the canvas is fitted into, in screen
	// coordinates.
	Container Rect
}

var _ Surface = Viewport{}

// NewViewport returns a viewport for a container of the given size whose top
// left corner is at the screen origin.
func NewViewport(sz Size) Viewport {
	return Viewport{Container: NewRectFromOrigin(Point{}, sz)}
}

// Box returns the part of the container covered by the canvas. It reports
// false if the container is empty.
func (vp Viewport) Box() (Rect, bool) {
	c := vp.Container
	if c.Size().IsEmpty() || c.IsInf() {
		return Rect{}, false
	}
	return c.ContainedRectWithAspectRatio(Canvas.AspectRatio()), true
}

// LogicalToScreen returns the transform from logical to screen coordinates.
// It reports false if the container is empty.
func (vp Viewport) LogicalToScreen() (Affine, bool) {
	box, ok := vp.Box()
	if !ok {
		return Affine{}, false
	}
	s := box.Width() / Canvas.Width()
	return Scale(s, s).ThenTranslate(Vec2(box.Origin())), true
}

// ScreenToLogical implements [Surface].
func (vp Viewport) ScreenToLogical(screen Point) (Point, bool) {
	aff, ok := vp.LogicalToScreen()
	if !ok {
		return Point{}, false
	}
	return screen.Transform(aff.Invert()), true
}
