package casteljau

// SampleResolution is the number of points used to approximate a curve.
const SampleResolution = 100

// Sample evaluates the curve described by points at resolution uniformly
// spaced parameters, t_i = i / (resolution-1), including both end points.
// Resolutions below 2 are treated as 2.
//
// The result is empty if points is empty.
func Sample(points []Point, resolution int) []Point {
	if len(points) == 0 {
		return []Point{}
	}
	resolution = max(resolution, 2)
	out := make([]Point, resolution)
	buf := make([]Point, len(points))
	last := float64(resolution - 1)
	for i := range out {
		copy(buf, points)
		out[i] = reduce(float64(i)/last, buf)
	}
	return out
}

// Sampler memoizes the sampled curve of a [ControlPoints]. The curve is
// recomputed only when the control points' revision changes, never when the
// parameter used for the construction pyramid does.
//
// The zero value is ready to use.
type Sampler struct {
	curve     []Point
	revision  uint64
	valid     bool
	recompute int
}

// Curve returns the sampled curve of cp, recomputing it if cp changed since
// the last call.
func (s *Sampler) Curve(cp *ControlPoints) []Point {
	if s.valid && s.revision == cp.Revision() {
		return s.curve
	}
	s.curve = Sample(cp.Points(), SampleResolution)
	s.revision = cp.Revision()
	s.valid = true
	s.recompute++
	return s.curve
}

// Recomputes returns how many times the curve has been computed.
func (s *Sampler) Recomputes() int {
	return s.recompute
}
