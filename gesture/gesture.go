// Package gesture converts noisy per-frame hand-landmark coordinates into a
// stable cursor and a debounced pinch signal. Landmark detection itself is an
// external collaborator; this package only consumes its output.
package gesture

import "math"

// Landmark indices within a Hand, matching the upstream tracker's layout.
// Only the index fingertip and thumb tip carry gameplay meaning; the rest are
// decorative overlay data.
const (
	ThumbTip = 4
	IndexTip = 8

	// LandmarkCount is the number of landmarks the tracker reports per hand.
	LandmarkCount = 21
)

// Point is a 2D position. Landmarks use normalized (0-1) coordinates; the
// cursor uses canvas pixels.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Hand is one tracked hand's landmark set in normalized coordinates.
type Hand struct {
	Landmarks [LandmarkCount]Point
}

// Frame is one tracker result: zero or one hands.
type Frame struct {
	Hands []Hand
}

// Tracked reports whether the frame contains a hand.
func (f Frame) Tracked() bool {
	return len(f.Hands) > 0
}

// Cursor returns the grab point for the first hand: the midpoint of the index
// fingertip and thumb tip, still in normalized coordinates.
func (f Frame) Cursor() Point {
	h := f.Hands[0]
	return Point{
		X: (h.Landmarks[IndexTip].X + h.Landmarks[ThumbTip].X) / 2,
		Y: (h.Landmarks[IndexTip].Y + h.Landmarks[ThumbTip].Y) / 2,
	}
}

// PinchDist returns the normalized index-thumb fingertip distance for the
// first hand.
func (f Frame) PinchDist() float64 {
	h := f.Hands[0]
	return h.Landmarks[IndexTip].Dist(h.Landmarks[ThumbTip])
}

// Source delivers tracker frames. Implementations push one Frame per processed
// video frame; the rate is theirs to decide.
type Source interface {
	// Next returns the most recent frame, or ok=false when no new frame is
	// available yet.
	Next() (Frame, bool)
}
