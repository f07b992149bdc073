package game

import "github.com/plus3/pinchspell/gesture"

// TrackingSystem feeds tracker frames through the smoothing filter and pinch
// classifier and publishes the result as the cursor singleton. It owns the
// smoother and classifier state for the session.
type TrackingSystem struct {
	Source gesture.Source

	smoother   *gesture.Smoother
	classifier *gesture.PinchClassifier
}

// NewTrackingSystem creates the gesture stage for the given tracker source.
func NewTrackingSystem(cfg Config, source gesture.Source) *TrackingSystem {
	return &TrackingSystem{
		Source:     source,
		smoother:   gesture.NewSmoother(cfg.SmoothFactor),
		classifier: gesture.NewPinchClassifier(cfg.Pinch),
	}
}

// Classifier exposes the pinch classifier for the debug inspector.
func (s *TrackingSystem) Classifier() *gesture.PinchClassifier {
	return s.classifier
}

// Execute consumes at most one tracker frame. With no new frame the cursor
// keeps its previous state; with a hand-less frame the debounce bookkeeping
// resets and gesture-driven motion freezes until tracking resumes.
func (s *TrackingSystem) Execute(f *Frame) {
	frame, ok := s.Source.Next()
	if !ok {
		return
	}

	w := f.World
	cfg := w.Config()
	cursor := w.Cursor()
	holding := w.Drag().Active != NoTile

	// Any tracker result, even an empty one, ends the loading phase.
	w.Session().Phase = Active

	if !frame.Tracked() {
		s.classifier.Lost(holding)
		s.smoother.Reset()
		cursor.Tracked = false
		// A lost hand never releases a held tile; the effective pinch
		// is left as it was so the drag merely freezes in place.
		if !holding {
			cursor.Pinch = false
		}
		return
	}

	raw := frame.Cursor()
	if cfg.Mirror {
		raw.X = 1 - raw.X
	}
	smoothed := s.smoother.Update(gesture.Point{
		X: raw.X * cfg.CanvasWidth,
		Y: raw.Y * cfg.CanvasHeight,
	})

	dist := frame.PinchDist()
	cursor.X = smoothed.X
	cursor.Y = smoothed.Y
	cursor.Tracked = true
	cursor.PinchDist = dist
	cursor.Pinch = s.classifier.Update(dist, holding)
}
