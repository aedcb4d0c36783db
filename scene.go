package casteljau

// Frame is everything needed to draw the current state.
type Frame struct {
	// Curve is the sampled curve.
	Curve []Point
	// Levels is the construction pyramid at T. Levels[0] are the control
	// points.
	Levels [][]Point
	T      float64
	Order  int
	// Dragging is the index of the dragged control point, or -1.
	Dragging int
}

// ControlPoints returns the frame's control points.
func (f Frame) ControlPoints() []Point {
	if len(f.Levels) == 0 {
		return nil
	}
	return f.Levels[0]
}

// CurvePoint returns the point on the curve at T, the single point of the
// last level. It reports false if the frame has no points.
func (f Frame) CurvePoint() (Point, bool) {
	if len(f.Levels) == 0 {
		return Point{}, false
	}
	last := f.Levels[len(f.Levels)-1]
	if len(last) == 0 {
		return Point{}, false
	}
	return last[len(last)-1], true
}

// Halves returns the control points of the two curves the frame's curve
// splits into at T. See [Subdivide].
func (f Frame) Halves() (left, right []Point) {
	return halves(f.Levels)
}

// Scene holds the complete state of the construction tool and derives the
// sampled curve and the construction pyramid from it.
//
// Derived data is recomputed lazily and explicitly: the curve when the
// control points changed, the pyramid when the control points or t changed.
type Scene struct {
	points     *ControlPoints
	controller *Controller
	sampler    Sampler
	t          float64

	levels         [][]Point
	levelsRevision uint64
	levelsT        float64
	levelsValid    bool
	levelsComputes int
}

// NewScene returns a scene with control points for the given order, the
// parameter t and a controller mapping pointer positions with surface.
func NewScene(order int, t float64, surface Surface) *Scene {
	cp := NewControlPoints(order)
	s := &Scene{
		points:     cp,
		controller: NewController(cp, surface),
		t:          DefaultT,
	}
	s.SetT(t)
	return s
}

// ControlPoints returns the scene's control points.
func (s *Scene) ControlPoints() *ControlPoints { return s.points }

// Controller returns the controller writing to the scene's control points.
func (s *Scene) Controller() *Controller { return s.controller }

// T returns the current parameter.
func (s *Scene) T() float64 { return s.t }

// SetT sets the parameter, clamped to [0, 1]. NaN is ignored. It reports
// whether t was accepted.
func (s *Scene) SetT(t float64) bool {
	t, ok := ClampT(t)
	if !ok {
		return false
	}
	s.t = t
	return true
}

// Curve returns the sampled curve.
func (s *Scene) Curve() []Point {
	return s.sampler.Curve(s.points)
}

// Levels returns the construction pyramid at the current parameter.
func (s *Scene) Levels() [][]Point {
	rev := s.points.Revision()
	if !s.levelsValid || s.levelsRevision != rev || s.levelsT != s.t {
		s.levels = Levels(s.t, s.points.Points())
		s.levelsRevision = rev
		s.levelsT = s.t
		s.levelsValid = true
		s.levelsComputes++
	}
	return s.levels
}

// CurvePoint returns the point on the curve at the current parameter.
func (s *Scene) CurvePoint() Point {
	levels := s.Levels()
	return levels[len(levels)-1][0]
}

// Frame returns a snapshot of the scene for drawing.
func (s *Scene) Frame() Frame {
	dragging := -1
	if i, ok := s.controller.Dragging(); ok {
		dragging = i
	}
	return Frame{
		Curve:    s.Curve(),
		Levels:   s.Levels(),
		T:        s.t,
		Order:    s.points.Order(),
		Dragging: dragging,
	}
}
