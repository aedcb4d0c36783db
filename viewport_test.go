package casteljau

import (
	"testing"
)

func TestViewportUnmeasured(t *testing.T) {
	for _, vp := range []Viewport{
		{},
		NewViewport(Sz(0, 400)),
		NewViewport(Sz(800, 0)),
		{Container: Rect{0, 0, -800, 400}},
	} {
		if _, ok := vp.ScreenToLogical(Pt(10, 10)); ok {
			t.Errorf("%v: mapping should be unavailable", vp.Container)
		}
		if _, ok := vp.LogicalToScreen(); ok {
			t.Errorf("%v: transform should be unavailable", vp.Container)
		}
	}
}

func TestViewportIdentity(t *testing.T) {
	vp := NewViewport(Sz(CanvasWidth, CanvasHeight))
	pt, ok := vp.ScreenToLogical(Pt(300, 250))
	if !ok {
		t.Fatal("mapping unavailable")
	}
	diff(t, Pt(300, 250), pt, approx(1e-9))
}

func TestViewportLetterbox(t *testing.T) {
	for _, tt := range []struct {
		name      string
		container Rect
		screen    Point
		want      Point
	}{
		// Half size: everything scales by 2.
		{"scaled", Rect{0, 0, 400, 200}, Pt(150, 125), Pt(300, 250)},
		// Wide container: 1000×400 centres the canvas with 100 units on either side.
		{"pillarbox", Rect{0, 0, 1000, 400}, Pt(100, 0), Pt(0, 0)},
		{"pillarbox-far", Rect{0, 0, 1000, 400}, Pt(900, 400), Pt(800, 400)},
		// Tall container: 800×1000 centres the canvas vertically at y=300.
		{"letterbox", Rect{0, 0, 800, 1000}, Pt(400, 500), Pt(400, 200)},
		// Container positioned away from the origin.
		{"offset", Rect{20, 30, 420, 230}, Pt(20, 30), Pt(0, 0)},
		// Positions outside the canvas map outside of it.
		{"outside", Rect{0, 0, 1000, 400}, Pt(0, 0), Pt(-100, 0)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			vp := Viewport{Container: tt.container}
			got, ok := vp.ScreenToLogical(tt.screen)
			if !ok {
				t.Fatal("mapping unavailable")
			}
			diff(t, tt.want, got, approx(1e-9))

			aff, _ := vp.LogicalToScreen()
			diff(t, tt.screen, got.Transform(aff), approx(1e-9))
		})
	}
}
