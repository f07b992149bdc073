package gesture_test

import (
	"testing"

	"github.com/plus3/pinchspell/gesture"
	"github.com/stretchr/testify/assert"
)

func TestSmootherAdoptsFirstSample(t *testing.T) {
	s := gesture.NewSmoother(0.35)

	got := s.Update(gesture.Point{X: 100, Y: 200})

	assert.Equal(t, gesture.Point{X: 100, Y: 200}, got)
}

func TestSmootherBlendsTowardSample(t *testing.T) {
	s := gesture.NewSmoother(0.5)
	s.Update(gesture.Point{X: 0, Y: 0})

	got := s.Update(gesture.Point{X: 10, Y: 20})

	assert.InDelta(t, 5.0, got.X, 1e-9)
	assert.InDelta(t, 10.0, got.Y, 1e-9)

	got = s.Update(gesture.Point{X: 10, Y: 20})
	assert.InDelta(t, 7.5, got.X, 1e-9)
	assert.InDelta(t, 15.0, got.Y, 1e-9)
}

func TestSmootherResetSnapsToNextSample(t *testing.T) {
	s := gesture.NewSmoother(0.1)
	s.Update(gesture.Point{X: 0, Y: 0})
	s.Update(gesture.Point{X: 1, Y: 1})

	s.Reset()
	got := s.Update(gesture.Point{X: 500, Y: 400})

	assert.Equal(t, gesture.Point{X: 500, Y: 400}, got)
}

func TestSmootherRejectsBadFactor(t *testing.T) {
	assert.Panics(t, func() { gesture.NewSmoother(0) })
	assert.Panics(t, func() { gesture.NewSmoother(1.5) })
	assert.NotPanics(t, func() { gesture.NewSmoother(1) })
}
