// Package casteljau implements the model behind an interactive Bézier
// construction tool. A user manipulates a sequence of control points and a
// parameter t; the package computes the curve, the intermediate points of De
// Casteljau's algorithm at t, and maps pointer input from screen space onto
// the fixed logical canvas the geometry lives in.
//
// # Geometry
//
// [Evaluate] computes a single point of the Bézier curve described by an
// arbitrary number of control points, using repeated linear interpolation.
// [Levels] returns every intermediate level of that reduction, the
// construction pyramid: level 0 is the control polygon, each following level
// has one point fewer, and the last level holds the point on the curve.
// [Sample] approximates the whole curve with a fixed number of uniformly
// spaced evaluations.
//
// All geometry is expressed in a logical coordinate space of
// [CanvasWidth]×[CanvasHeight] units with y pointing down, independent of how
// large the surface is on screen.
//
// # State
//
// [ControlPoints] owns the control point sequence. Changing the curve's order
// replaces the whole sequence with a fresh layout on a half-sine arc, see
// [Layout]. Moving a point replaces exactly one element, clamped to the
// canvas.
//
// [Controller] is the pointer state machine. It is either idle or dragging a
// single control point, and it is the only component that writes to
// [ControlPoints] in response to input. Screen positions are translated into
// logical positions through a [Surface], usually a [Viewport].
//
// [Scene] ties everything together and recomputes derived data explicitly:
// the sampled curve only when the control points change, the construction
// pyramid when either the control points or t change.
//
// # Concurrency
//
// None of the types in this package are safe for concurrent use. They are
// meant to be driven from a single event loop; hosts that receive input on
// multiple goroutines must serialize access themselves.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package casteljau
