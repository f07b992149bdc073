package game_test

import (
	"testing"

	"github.com/plus3/pinchspell/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreDelta(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		difficulty game.Difficulty
		timeLeft   float64
		want       int
	}{
		{"medium example", "DOG", game.Medium, 20, 75},
		{"easy", "CAT", game.Easy, 30, 60},
		{"hard", "GIRAFFE", game.Hard, 12.8, 165},
		{"fractional time floors", "DOG", game.Medium, 20.9, 76},
		{"no time left", "DOG", game.Medium, 0, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := game.ScoreDelta(tt.word, 10, tt.difficulty, tt.timeLeft)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSolveAwardsScoreAndCelebrates(t *testing.T) {
	cfg := testConfig()
	g, source, sink := newTestGame(t, cfg, "CAT")
	w := g.World()

	for _, letter := range "CAT" {
		dragTileToTray(t, g, source, letter)
	}

	round := w.Round()
	assert.True(t, round.Solved)
	assert.Equal(t, 1, sink.count(game.CueSuccess))
	assert.Equal(t, 1, w.Session().WordsCompleted)
	assert.NotEmpty(t, w.Particles())

	// Score is word score plus the floored time bonus at solve time.
	assert.Greater(t, w.Session().Score, 0)
	assert.Equal(t, w.Session().Score, w.Session().HighScore)
}

func TestSolveRequiresExactWord(t *testing.T) {
	cfg := testConfig()
	g, source, _ := newTestGame(t, cfg, "CAT")
	w := g.World()

	// A strict prefix must not solve.
	dragTileToTray(t, g, source, 'C')
	dragTileToTray(t, g, source, 'A')

	assert.Equal(t, "CA", w.TrayWord())
	assert.False(t, w.Round().Solved)
	assert.Equal(t, 0, w.Session().Score)
}

func TestSolvedRoundBlocksFurtherGrabs(t *testing.T) {
	cfg := testConfig()
	// Keep the solved round around long enough to poke at it.
	cfg.CelebrateSeconds = 3600
	g, source, sink := newTestGame(t, cfg, "CAT")
	w := g.World()

	for _, letter := range "CAT" {
		dragTileToTray(t, g, source, letter)
	}
	require.True(t, w.Round().Solved)
	scoreAfterSolve := w.Session().Score
	grabsAfterSolve := sink.count(game.CueGrab)

	// Try to grab another tile; the gate must hold.
	tile := findTile(t, w, 'Z')
	nx := tile.X / cfg.CanvasWidth
	ny := tile.Y / cfg.CanvasHeight
	for range 20 {
		source.push(handAt(nx, ny, true))
		step(t, g)
	}

	assert.Equal(t, game.NoTile, w.Drag().Active)
	assert.Equal(t, grabsAfterSolve, sink.count(game.CueGrab))
	assert.Equal(t, scoreAfterSolve, w.Session().Score)
	assert.Equal(t, 1, sink.count(game.CueSuccess))
	assert.True(t, w.Round().Solved, "a solved round stays solved")
}

func TestFailedRoundCannotBeSolved(t *testing.T) {
	cfg := testConfig()
	cfg.RoundSeconds = 2
	// Keep the failed round in its grace window long enough to poke at it.
	cfg.GraceSeconds = 3600
	g, source, sink := newTestGame(t, cfg, "CAT")
	w := g.World()

	// Spell "CA", grab the 'T' and hold it over the tray line while the
	// clock runs out under the drag.
	for i, letter := range "CA" {
		tile := findTile(t, w, letter)
		tile.InTray = true
		tile.TrayIndex = i
	}
	game.ReindexTray(cfg, w)
	require.Equal(t, "CA", w.TrayWord())

	tile := grabTile(t, g, source, 'T')
	ty := cfg.TrayLineY / cfg.CanvasHeight
	steps := 0
	for !w.Round().Failed {
		source.push(handAt(0.5, ty, true))
		step(t, g)
		steps++
		require.Less(t, steps, 400, "round never timed out")
	}
	require.True(t, tile.Dragging, "the drag survives the timeout")
	require.Equal(t, 1, sink.count(game.CueFail))

	// Releasing the final letter on the tray line during the grace delay
	// must not turn the fail into a solve.
	source.push(handAt(0.5, ty, false))
	step(t, g)

	round := w.Round()
	assert.False(t, round.Solved)
	assert.True(t, round.Failed)
	assert.Equal(t, "CAT", w.TrayWord())
	assert.Equal(t, 0, w.Session().Score)
	assert.Equal(t, 0, w.Session().WordsCompleted)
	assert.Equal(t, 0, sink.count(game.CueSuccess))
	assert.Empty(t, w.Particles())
}

func TestFailedRoundBlocksFurtherGrabs(t *testing.T) {
	cfg := testConfig()
	cfg.RoundSeconds = 1
	cfg.GraceSeconds = 3600
	g, source, sink := newTestGame(t, cfg, "CAT")
	w := g.World()

	steps := 0
	for !w.Round().Failed {
		step(t, g)
		steps++
		require.Less(t, steps, 400, "round never timed out")
	}

	// A pinch over a tile during the grace delay must not start a drag.
	tile := findTile(t, w, 'C')
	nx := tile.X / cfg.CanvasWidth
	ny := tile.Y / cfg.CanvasHeight
	for range 20 {
		source.push(handAt(nx, ny, true))
		step(t, g)
	}

	assert.Equal(t, game.NoTile, w.Drag().Active)
	assert.False(t, tile.Dragging)
	assert.Equal(t, 0, sink.count(game.CueGrab))
	assert.Equal(t, 1, sink.count(game.CueFail))
}

func TestHighScorePersistsThroughStore(t *testing.T) {
	cfg := testConfig()
	store := &game.MemoryScoreStore{}
	require.NoError(t, store.SetHighScore(10))

	source := &queueSource{}
	g, err := game.New(cfg, source, fixedPicker{word: "CAT"}, nil, store, "test")
	require.NoError(t, err)

	assert.Equal(t, 10, g.World().Session().HighScore)

	for _, letter := range "CAT" {
		dragTileToTray(t, g, source, letter)
	}

	saved, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, g.World().Session().Score, saved)
	assert.Greater(t, saved, 10)
}
