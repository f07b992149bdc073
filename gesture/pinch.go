package gesture

// PinchConfig tunes the pinch classifier. Distances are in the tracker's
// normalized unit space, not canvas pixels.
type PinchConfig struct {
	// GrabThreshold is the fingertip distance below which a pinch can start
	// a grab. Tighter than ReleaseThreshold so a grab is deliberate.
	GrabThreshold float64
	// ReleaseThreshold is the distance the pinch may loosen to while a tile
	// is held before it counts as a release.
	ReleaseThreshold float64
	// ConfirmFrames is the number of consecutive pinching frames required
	// before the signal is confirmed. Must be at least 2.
	ConfirmFrames int
}

// DefaultPinchConfig returns the tuning used by the game.
func DefaultPinchConfig() PinchConfig {
	return PinchConfig{
		GrabThreshold:    0.05,
		ReleaseThreshold: 0.08,
		ConfirmFrames:    3,
	}
}

// PinchClassifier turns per-frame fingertip distances into a debounced boolean
// grab signal. Hysteresis between the two thresholds keeps tracking noise from
// flickering a held tile loose; the confirmation counter keeps one spurious
// frame from starting a grab.
type PinchClassifier struct {
	cfg       PinchConfig
	frames    int
	confirmed bool
}

// NewPinchClassifier creates a classifier with the given tuning.
func NewPinchClassifier(cfg PinchConfig) *PinchClassifier {
	if cfg.ConfirmFrames < 2 {
		panic("gesture: ConfirmFrames must be at least 2")
	}
	return &PinchClassifier{cfg: cfg}
}

// Update classifies one frame. dist is the normalized fingertip distance and
// holding reports whether a tile is currently being dragged. The return value
// is the effective pinch-for-interaction signal.
func (c *PinchClassifier) Update(dist float64, holding bool) bool {
	threshold := c.cfg.GrabThreshold
	if holding {
		threshold = c.cfg.ReleaseThreshold
	}
	raw := dist < threshold

	if raw {
		if c.frames < c.cfg.ConfirmFrames {
			c.frames++
		}
		if c.frames >= c.cfg.ConfirmFrames {
			c.confirmed = true
		}
	} else {
		c.frames = 0
		// An active drag keeps the confirmation latched; a single
		// declassified frame must not end it.
		if !holding {
			c.confirmed = false
		}
	}

	return raw && (c.confirmed || holding)
}

// Lost resets the debounce bookkeeping after a frame with zero hands. A
// pending grab confirmation is always cancelled; an already-active drag is
// not ended here, so the latch survives when holding is true.
func (c *PinchClassifier) Lost(holding bool) {
	c.frames = 0
	if !holding {
		c.confirmed = false
	}
}

// Confirmed reports whether the pinch signal is currently confirmed.
func (c *PinchClassifier) Confirmed() bool {
	return c.confirmed
}

// Frames returns the consecutive-pinch frame count, saturated at
// ConfirmFrames.
func (c *PinchClassifier) Frames() int {
	return c.frames
}
