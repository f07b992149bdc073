package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/pinchspell/gesture"
)

// MouseSource is a stand-in hand tracker for development: the mouse cursor
// plays the hand and the left button plays the pinch. It produces the same
// normalized landmark frames a webcam tracker would, so the engine cannot
// tell the difference.
type MouseSource struct {
	width, height float64
	frame         gesture.Frame
	fresh         bool
}

// NewMouseSource creates a source for a canvas of the given size.
func NewMouseSource(width, height float64) *MouseSource {
	return &MouseSource{width: width, height: height}
}

// pinchOffset separates the fake fingertips: closed enough to grab while the
// button is held, clearly open otherwise.
const (
	pinchClosedOffset = 0.01
	pinchOpenOffset   = 0.08
)

// Poll captures the current mouse state as a tracker frame. Call once per
// Ebiten update.
func (m *MouseSource) Poll() {
	mx, my := ebiten.CursorPosition()
	cx := float64(mx) / m.width
	cy := float64(my) / m.height

	offset := pinchOpenOffset
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		offset = pinchClosedOffset
	}

	var hand gesture.Hand
	hand.Landmarks[gesture.IndexTip] = gesture.Point{X: cx - offset/2, Y: cy}
	hand.Landmarks[gesture.ThumbTip] = gesture.Point{X: cx + offset/2, Y: cy}

	m.frame = gesture.Frame{Hands: []gesture.Hand{hand}}
	m.fresh = true
}

// Next implements gesture.Source.
func (m *MouseSource) Next() (gesture.Frame, bool) {
	if !m.fresh {
		return gesture.Frame{}, false
	}
	m.fresh = false
	return m.frame, true
}
