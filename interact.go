package casteljau

import (
	"fmt"
	"log/slog"
)

// DragState describes what the [Controller] is doing.
type DragState struct {
	// Active is true while a control point is being dragged.
	Active bool
	// Index is the dragged control point. It is only meaningful if Active
	// is true.
	Index int
}

func (ds DragState) String() string {
	if !ds.Active {
		return "idle"
	}
	return fmt.Sprintf("dragging(%d)", ds.Index)
}

// Controller turns pointer events into changes of a [ControlPoints]. It is
// either idle or dragging exactly one control point. Only control points
// themselves can be dragged, never the derived points of the construction.
type Controller struct {
	points  *ControlPoints
	surface Surface
	state   DragState
}

// NewController returns an idle controller that writes to cp and maps pointer
// positions with surface. surface may be nil until the host has one, in which
// case pointer moves are dropped.
func NewController(cp *ControlPoints, surface Surface) *Controller {
	return &Controller{
		points:  cp,
		surface: surface,
	}
}

// SetSurface replaces the surface used to map pointer positions.
func (c *Controller) SetSurface(s Surface) {
	c.surface = s
}

// State returns the current drag state.
func (c *Controller) State() DragState { return c.state }

// Dragging returns the index of the control point being dragged, if any.
func (c *Controller) Dragging() (int, bool) {
	return c.state.Index, c.state.Active
}

// PointerDown starts dragging the control point at index. It reports whether
// a drag started, which is not the case for out-of-range indices.
func (c *Controller) PointerDown(index int) bool {
	if index < 0 || index >= c.points.Len() {
		return false
	}
	c.state = DragState{Active: true, Index: index}
	Logger().Debug("drag started", slog.Int("index", index))
	return true
}

// PointerMove moves the dragged control point, if any, to the logical
// position corresponding to the screen position. Moves are dropped while the
// surface can't map positions. It reports whether a point was moved.
func (c *Controller) PointerMove(screen Point) bool {
	if !c.state.Active {
		return false
	}
	if c.surface == nil {
		Logger().Debug("pointer move dropped, no surface")
		return false
	}
	pt, ok := c.surface.ScreenToLogical(screen)
	if !ok {
		Logger().Debug("pointer move dropped, surface not measured")
		return false
	}
	return c.points.MovePoint(c.state.Index, pt)
}

// PointerUp ends the current drag, if any.
func (c *Controller) PointerUp() {
	if c.state.Active {
		Logger().Debug("drag ended", slog.Int("index", c.state.Index))
	}
	c.state = DragState{}
}

// PointerLeave is called when the pointer leaves the surface. It behaves like
// PointerUp, so that releasing the button outside of the surface doesn't leave
// a drag behind.
func (c *Controller) PointerLeave() {
	c.PointerUp()
}

// SetOrder ends any drag and replaces the control points with the layout for
// order n, see [ControlPoints.SetOrder].
func (c *Controller) SetOrder(n int) {
	c.PointerUp()
	c.points.SetOrder(n)
	Logger().Debug("order changed", slog.Int("requested", n), slog.Int("order", c.points.Order()))
}

// HitTest returns the index of the point whose marker of the given radius
// contains at. If several markers contain it, the one whose centre is closest
// wins; on ties, the later point, which is drawn on top.
func HitTest(points []Point, at Point, radius float64) (int, bool) {
	best := -1
	var bestDist float64
	for i, pt := range points {
		if !(Circle{Center: pt, Radius: radius}).Contains(at) {
			continue
		}
		d := pt.DistanceSquared(at)
		if best == -1 || d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best, best != -1
}
