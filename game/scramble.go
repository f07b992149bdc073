package game

import "math/rand/v2"

// ScrambleSystem periodically reshuffles the positions of pool tiles so the
// player has to keep re-locating letters. Tray tiles and a held tile are
// never moved, and the clock stands still once the round is solved or has
// timed out. The countdown lives in the round singleton, so a round change
// cancels any pending scramble with it.
type ScrambleSystem struct{}

// Execute counts down and, on expiry, re-places the movable pool tiles.
func (s *ScrambleSystem) Execute(f *Frame) {
	w := f.World
	cfg := w.Config()
	if cfg.ScrambleSeconds <= 0 {
		return
	}

	round := w.Round()
	if round.Word == "" || round.Solved || round.Failed {
		return
	}

	round.ScrambleLeft -= f.DeltaTime
	if round.ScrambleLeft > 0 {
		return
	}
	round.ScrambleLeft = cfg.ScrambleSeconds

	var movable []*Tile
	for tile := range w.All() {
		if tile.InTray || tile.Dragging {
			continue
		}
		movable = append(movable, tile)
	}
	rand.Shuffle(len(movable), func(i, j int) {
		movable[i], movable[j] = movable[j], movable[i]
	})
	// Ease, don't snap: the reshuffle should read as motion, not teleport.
	PlacePool(cfg, movable, false)
}
