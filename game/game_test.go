package game_test

import (
	"testing"

	"github.com/plus3/pinchspell/game"
	"github.com/plus3/pinchspell/gesture"
	"github.com/stretchr/testify/require"
)

// testConfig is a square canvas with scrambling off so positions stay put
// unless a test moves them.
func testConfig() game.Config {
	cfg := game.DefaultConfig(1000, 1000)
	cfg.Mirror = false
	cfg.ScrambleSeconds = 0
	return cfg
}

// fixedPicker always returns the same word.
type fixedPicker struct {
	word string
}

func (p fixedPicker) Pick(string, game.Difficulty) (string, error) {
	return p.word, nil
}

// recordSink captures cues in emit order.
type recordSink struct {
	cues []game.Cue
}

func (r *recordSink) Play(c game.Cue) {
	r.cues = append(r.cues, c)
}

func (r *recordSink) count(c game.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// queueSource replays queued tracker frames, then reports no new frames.
type queueSource struct {
	frames []gesture.Frame
}

func (s *queueSource) push(f gesture.Frame) {
	s.frames = append(s.frames, f)
}

func (s *queueSource) Next() (gesture.Frame, bool) {
	if len(s.frames) == 0 {
		return gesture.Frame{}, false
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f, true
}

// handAt builds a one-hand frame whose fake fingertips straddle the given
// normalized position. pinched chooses a fingertip gap on the right side of
// the default thresholds.
func handAt(x, y float64, pinched bool) gesture.Frame {
	gap := 0.2
	if pinched {
		gap = 0.01
	}
	var hand gesture.Hand
	hand.Landmarks[gesture.IndexTip] = gesture.Point{X: x - gap/2, Y: y}
	hand.Landmarks[gesture.ThumbTip] = gesture.Point{X: x + gap/2, Y: y}
	return gesture.Frame{Hands: []gesture.Hand{hand}}
}

// noHand is a tracker frame with zero hands.
func noHand() gesture.Frame {
	return gesture.Frame{}
}

// newTestGame assembles a game over a queue source for the fixed word.
func newTestGame(t *testing.T, cfg game.Config, word string) (*game.Game, *queueSource, *recordSink) {
	t.Helper()
	source := &queueSource{}
	sink := &recordSink{}
	g, err := game.New(cfg, source, fixedPicker{word: word}, sink, nil, "test")
	require.NoError(t, err)
	return g, source, sink
}

// findTile returns some pool tile with the given letter.
func findTile(t *testing.T, w *game.World, letter rune) *game.Tile {
	t.Helper()
	for tile := range w.All() {
		if tile.Letter == letter && !tile.InTray {
			return tile
		}
	}
	t.Fatalf("no pool tile with letter %c", letter)
	return nil
}

// dragTileToTray drives the full gesture sequence for one tile: approach,
// pinch until confirmed, carry to the tray line, release. Each pushed frame
// is one engine update at 60 fps.
func dragTileToTray(t *testing.T, g *game.Game, source *queueSource, letter rune) {
	t.Helper()
	w := g.World()
	cfg := w.Config()
	tile := findTile(t, w, letter)

	nx := tile.X / cfg.CanvasWidth
	ny := tile.Y / cfg.CanvasHeight

	// Hover first so the smoothed cursor settles over the tile, then hold
	// the pinch until the grab lands.
	for range 20 {
		source.push(handAt(nx, ny, false))
		step(t, g)
	}
	for range cfg.Pinch.ConfirmFrames + 2 {
		source.push(handAt(nx, ny, true))
		step(t, g)
	}
	require.Equal(t, tile.ID, w.Drag().Active, "tile %c was not grabbed", letter)

	// Carry to the tray line and release.
	ty := cfg.TrayLineY / cfg.CanvasHeight
	for range 30 {
		source.push(handAt(nx, ty, true))
		step(t, g)
	}
	source.push(handAt(nx, ty, false))
	step(t, g)
	require.Equal(t, game.NoTile, w.Drag().Active)
}

func step(t *testing.T, g *game.Game) {
	t.Helper()
	require.NoError(t, g.Update(1.0/60.0))
}
