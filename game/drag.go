package game

import "math"

// DragSystem is the gesture state machine: Idle when no tile is held,
// Dragging while exactly one tile follows the cursor. Transitions are
// evaluated once per frame, after the tracking stage has run.
type DragSystem struct{}

// Execute advances the drag state machine by one frame.
func (s *DragSystem) Execute(f *Frame) {
	w := f.World
	drag := w.Drag()

	if drag.Active == NoTile {
		s.tryGrab(f)
		return
	}

	tile := w.Tile(drag.Active)
	if tile == nil {
		// The round was replaced out from under the drag; the id can
		// no longer resolve and the drag simply ends.
		drag.Active = NoTile
		return
	}

	cursor := w.Cursor()
	if cursor.Pinch {
		// Attached to the hand: position follows the cursor directly,
		// with the target pinned alongside so the settle animator has
		// nothing to fight over after release.
		tile.Snap(cursor.X, cursor.Y)
		return
	}

	s.release(f, tile)
}

// tryGrab performs the Idle->Dragging transition: effective pinch over a
// square hit box around a tile's current position. A decided round, solved or
// failed, accepts no new grabs. The first tile in pool order wins; pool order
// is shuffled at round start, so the tie-break carries no positional bias.
func (s *DragSystem) tryGrab(f *Frame) {
	w := f.World
	round := w.Round()
	if round.Solved || round.Failed {
		return
	}
	cursor := w.Cursor()
	if !cursor.Pinch {
		return
	}

	half := w.Config().TileSize / 2
	for tile := range w.All() {
		if tile.Dragging {
			continue
		}
		if math.Abs(cursor.X-tile.X) <= half && math.Abs(cursor.Y-tile.Y) <= half {
			tile.Dragging = true
			w.Drag().Active = tile.ID
			f.Effects.Cue(CueGrab)
			return
		}
	}
}

// release performs the Dragging->Idle transition: decide tray membership by
// the capture band around the tray line, rebuild the whole tray assignment,
// then run the word check.
func (s *DragSystem) release(f *Frame, tile *Tile) {
	w := f.World
	cfg := w.Config()

	tile.Dragging = false

	inBand := math.Abs(tile.Y-cfg.TrayLineY) <= cfg.TrayCaptureBand
	if inBand {
		if !tile.InTray {
			f.Effects.Cue(CueDrop)
			// Append behind every existing tray tile; ReindexTray
			// compacts the indices right after.
			tile.TrayIndex = w.TileCount()
		}
		tile.InTray = true
	} else {
		tile.InTray = false
		tile.TrayIndex = -1
	}

	ReindexTray(cfg, w)
	evaluateTray(f)
	w.Drag().Active = NoTile
}
