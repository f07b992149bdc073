package gesture

// Smoother is an exponential moving average over cursor samples. It removes
// tracker jitter before the gesture logic sees a position.
type Smoother struct {
	alpha  float64
	value  Point
	primed bool
}

// NewSmoother creates a smoother with the given blend factor in (0, 1].
// A factor of 1 disables smoothing.
func NewSmoother(alpha float64) *Smoother {
	if alpha <= 0 || alpha > 1 {
		panic("gesture: smoothing factor must be in (0, 1]")
	}
	return &Smoother{alpha: alpha}
}

// Update blends the raw sample into the smoothed value and returns it.
// The first sample after construction or Reset is adopted directly, so a
// reacquired hand never eases in from a stale position.
func (s *Smoother) Update(raw Point) Point {
	if !s.primed {
		s.value = raw
		s.primed = true
		return s.value
	}
	s.value.X += (raw.X - s.value.X) * s.alpha
	s.value.Y += (raw.Y - s.value.Y) * s.alpha
	return s.value
}

// Value returns the current smoothed position.
func (s *Smoother) Value() Point {
	return s.value
}

// Reset discards the smoothed state. The next Update snaps to its sample.
func (s *Smoother) Reset() {
	s.primed = false
}
