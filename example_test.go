package casteljau_test

import (
	"fmt"

	"honnef.co/go/casteljau"
)

func ExampleLevels() {
	points := []casteljau.Point{
		casteljau.Pt(0, 0),
		casteljau.Pt(100, 0),
		casteljau.Pt(100, 100),
	}
	for k, level := range casteljau.Levels(0.5, points) {
		fmt.Println(k, level)
	}
	// Output:
	// 0 [(0, 0) (100, 0) (100, 100)]
	// 1 [(50, 0) (100, 50)]
	// 2 [(75, 25)]
}

func ExampleController() {
	scene := casteljau.NewScene(3, 0.5, casteljau.NewViewport(casteljau.Sz(400, 200)))
	ctrl := scene.Controller()

	// The surface is drawn at half size, so screen positions are doubled.
	ctrl.PointerDown(1)
	ctrl.PointerMove(casteljau.Pt(150, 125))
	ctrl.PointerUp()

	fmt.Println(scene.ControlPoints().Points()[1])
	fmt.Println(len(scene.Curve()), len(scene.Levels()))
	// Output:
	// (300, 250)
	// 100 4
}
