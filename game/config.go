package game

import "github.com/plus3/pinchspell/gesture"

// Difficulty scales scoring and selects the word list.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Multiplier returns the score multiplier for the difficulty.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case Medium:
		return 1.5
	case Hard:
		return 2.0
	default:
		return 1.0
	}
}

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}

// Config holds every engine tunable. Distances and sizes are canvas pixels
// unless noted otherwise.
type Config struct {
	CanvasWidth  float64
	CanvasHeight float64

	// Mirror flips the tracker's x axis so on-screen motion matches the
	// player's, as a webcam selfie view does.
	Mirror bool

	// SmoothFactor is the cursor EMA blend factor in (0, 1].
	SmoothFactor float64
	Pinch        gesture.PinchConfig

	TileSize float64
	// TraySpacing multiplies TileSize to give the tray slot width.
	TraySpacing float64
	// TrayLineY is the fixed y of the tray row.
	TrayLineY float64
	// TrayCaptureBand is the vertical distance from the tray line within
	// which a released tile is captured into the tray.
	TrayCaptureBand float64

	// RowCapacity is the number of pool tiles per row.
	RowCapacity int
	// PoolBottomMargin is the gap between the canvas bottom and the lowest
	// pool row.
	PoolBottomMargin float64
	// PoolRowGap is the vertical distance between pool rows.
	PoolRowGap float64

	// EaseFactor is the per-frame settle interpolation factor.
	EaseFactor float64

	RoundSeconds float64
	// GraceSeconds is the pause between a timed-out round and the next one.
	GraceSeconds float64
	// CelebrateSeconds is the pause between a solved round and the next
	// one, long enough for the particles to play out.
	CelebrateSeconds float64
	// ScrambleSeconds is the interval between pool reshuffles. Zero
	// disables scrambling.
	ScrambleSeconds float64

	// PerLetterBase is the score awarded per target letter before the
	// difficulty multiplier.
	PerLetterBase int

	Difficulty Difficulty
}

// DefaultConfig returns the standard game tuning for the given canvas size.
func DefaultConfig(width, height float64) Config {
	return Config{
		CanvasWidth:      width,
		CanvasHeight:     height,
		Mirror:           true,
		SmoothFactor:     0.35,
		Pinch:            gesture.DefaultPinchConfig(),
		TileSize:         50,
		TraySpacing:      1.2,
		TrayLineY:        150,
		TrayCaptureBand:  60,
		RowCapacity:      9,
		PoolBottomMargin: 40,
		PoolRowGap:       60,
		EaseFactor:       0.15,
		RoundSeconds:     60,
		GraceSeconds:     2,
		CelebrateSeconds: 3,
		ScrambleSeconds:  10,
		PerLetterBase:    10,
		Difficulty:       Medium,
	}
}
