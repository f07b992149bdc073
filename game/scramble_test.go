package game_test

import (
	"testing"

	"github.com/plus3/pinchspell/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tileTargets(w *game.World) map[game.TileID][2]float64 {
	targets := make(map[game.TileID][2]float64)
	for tile := range w.All() {
		targets[tile.ID] = [2]float64{tile.TargetX, tile.TargetY}
	}
	return targets
}

func TestScrambleMovesPoolButNotTray(t *testing.T) {
	cfg := testConfig()
	cfg.ScrambleSeconds = 0.5
	g, _, _ := newTestGame(t, cfg, "CAT")
	w := g.World()

	trayTile := findTile(t, w, 'C')
	trayTile.InTray = true
	game.ReindexTray(cfg, w)
	trayX, trayY := trayTile.TargetX, trayTile.TargetY

	before := tileTargets(w)
	for range 40 {
		step(t, g)
	}

	after := tileTargets(w)
	moved := 0
	for id, target := range after {
		if target != before[id] {
			moved++
		}
	}
	assert.Positive(t, moved, "scramble did not relocate any pool tile")
	assert.Equal(t, trayX, trayTile.TargetX)
	assert.Equal(t, trayY, trayTile.TargetY)
	assert.True(t, trayTile.InTray)
}

func TestScrambleLeavesHeldTileUnderCursor(t *testing.T) {
	cfg := testConfig()
	cfg.ScrambleSeconds = 0.5
	g, source, _ := newTestGame(t, cfg, "CAT")
	w := g.World()

	tile := grabTile(t, g, source, 'T')

	// Hold still through two scramble periods; the held tile must stay
	// pinned to the cursor while everything else relocates.
	for range 70 {
		source.push(handAt(0.5, 0.5, true))
		step(t, g)
	}

	require.Equal(t, tile.ID, w.Drag().Active)
	cursor := w.Cursor()
	assert.Equal(t, cursor.X, tile.X)
	assert.Equal(t, cursor.Y, tile.Y)
}

func TestScrambleStopsAfterSolveAndTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.ScrambleSeconds = 0.5
	g, _, _ := newTestGame(t, cfg, "CAT")
	w := g.World()

	round := w.Round()
	round.Solved = true
	round.CelebrateLeft = 1000

	before := tileTargets(w)
	for range 60 {
		step(t, g)
	}
	assert.Equal(t, before, tileTargets(w), "scramble ran on a solved round")

	round.Solved = false
	round.Failed = true
	round.GraceLeft = 1000

	for range 60 {
		step(t, g)
	}
	assert.Equal(t, before, tileTargets(w), "scramble ran on a failed round")
}

func TestScrambleDisabledByConfig(t *testing.T) {
	cfg := testConfig() // ScrambleSeconds = 0
	g, _, _ := newTestGame(t, cfg, "CAT")
	w := g.World()

	before := tileTargets(w)
	for range 120 {
		step(t, g)
	}
	assert.Equal(t, before, tileTargets(w))
}
