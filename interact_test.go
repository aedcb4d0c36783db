package casteljau

import (
	"testing"
)

// fixedSurface maps screen positions by a fixed transform, or not at all if
// unavailable is set.
type fixedSurface struct {
	aff         Affine
	unavailable bool
}

func (s *fixedSurface) ScreenToLogical(pt Point) (Point, bool) {
	if s.unavailable {
		return Point{}, false
	}
	return pt.Transform(s.aff), true
}

func TestControllerDrag(t *testing.T) {
	cp := NewControlPoints(3)
	c := NewController(cp, NewViewport(Sz(CanvasWidth, CanvasHeight)))
	before := cp.Points()

	if c.PointerMove(Pt(10, 10)) {
		t.Error("move while idle changed a point")
	}
	if !c.PointerDown(1) {
		t.Fatal("PointerDown(1) didn't start a drag")
	}
	if i, ok := c.Dragging(); !ok || i != 1 {
		t.Fatalf("got Dragging() = (%d, %t), want (1, true)", i, ok)
	}
	if !c.PointerMove(Pt(300, 250)) {
		t.Fatal("move didn't change a point")
	}
	want := []Point{before[0], Pt(300, 250), before[2], before[3]}
	diff(t, want, cp.Points(), approx(1e-9))
	// Spelled out for the default layout.
	diff(t, Pt(50, 200), cp.Points()[0], approx(1e-9))
	diff(t, 516.667, cp.Points()[2].X, approx(1e-3))
	diff(t, Pt(750, 200), cp.Points()[3], approx(1e-9))

	c.PointerUp()
	if _, ok := c.Dragging(); ok {
		t.Error("still dragging after PointerUp")
	}
	rev := cp.Revision()
	c.PointerMove(Pt(0, 0))
	if cp.Revision() != rev {
		t.Error("move after PointerUp changed points")
	}
}

func TestControllerLeave(t *testing.T) {
	cp := NewControlPoints(3)
	c := NewController(cp, NewViewport(Sz(CanvasWidth, CanvasHeight)))
	c.PointerDown(2)
	c.PointerLeave()
	diff(t, DragState{}, c.State())
	if c.PointerMove(Pt(1, 1)) {
		t.Error("move after PointerLeave changed a point")
	}
}

func TestControllerPointerDownOutOfRange(t *testing.T) {
	cp := NewControlPoints(3)
	c := NewController(cp, nil)
	for _, idx := range []int{-1, 4, 99} {
		if c.PointerDown(idx) {
			t.Errorf("PointerDown(%d) started a drag", idx)
		}
	}
	diff(t, "idle", c.State().String())
}

func TestControllerSurfaceUnavailable(t *testing.T) {
	cp := NewControlPoints(3)
	s := &fixedSurface{aff: Scale(1, 1), unavailable: true}
	c := NewController(cp, s)
	c.PointerDown(0)
	rev := cp.Revision()
	if c.PointerMove(Pt(100, 100)) {
		t.Error("move without a transform changed a point")
	}
	if cp.Revision() != rev {
		t.Error("revision changed")
	}
	// The drag survives and continues once the surface is measured.
	diff(t, "dragging(0)", c.State().String())
	s.unavailable = false
	if !c.PointerMove(Pt(100, 100)) {
		t.Error("move didn't change a point")
	}
	diff(t, Pt(100, 100), cp.Points()[0])

	c.SetSurface(nil)
	if c.PointerMove(Pt(5, 5)) {
		t.Error("move without a surface changed a point")
	}
}

func TestControllerMapsScreenPositions(t *testing.T) {
	cp := NewControlPoints(3)
	// Screen is twice as large as the canvas.
	c := NewController(cp, NewViewport(Sz(2*CanvasWidth, 2*CanvasHeight)))
	c.PointerDown(3)
	c.PointerMove(Pt(1000, 100))
	diff(t, Pt(500, 50), cp.Points()[3], approx(1e-9))
	// Clamped to the canvas.
	c.PointerMove(Pt(-50, 5000))
	diff(t, Pt(0, 400), cp.Points()[3], approx(1e-9))
}

func TestControllerSetOrder(t *testing.T) {
	cp := NewControlPoints(3)
	c := NewController(cp, NewViewport(Sz(CanvasWidth, CanvasHeight)))
	c.PointerDown(3)
	c.SetOrder(2)
	if _, ok := c.Dragging(); ok {
		t.Error("drag survived an order change")
	}
	if cp.Len() != 3 {
		t.Errorf("got %d points, want 3", cp.Len())
	}
	c.SetOrder(500)
	if cp.Order() != MaxOrder {
		t.Errorf("got order %d, want %d", cp.Order(), MaxOrder)
	}
}

func TestHitTest(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(10, 0), Pt(14, 0)}
	for _, tt := range []struct {
		at   Point
		want int
		ok   bool
	}{
		{Pt(1, 1), 0, true},
		{Pt(9, 0), 1, true},
		{Pt(13, 0), 2, true},
		// Equidistant from both: the later point wins.
		{Pt(12, 0), 2, true},
		{Pt(50, 50), -1, false},
	} {
		i, ok := HitTest(pts, tt.at, 5)
		if i != tt.want || ok != tt.ok {
			t.Errorf("HitTest(%v) = (%d, %t), want (%d, %t)", tt.at, i, ok, tt.want, tt.ok)
		}
	}
	if _, ok := HitTest(nil, Pt(0, 0), 5); ok {
		t.Error("hit in empty sequence")
	}
}
