package game

import (
	"iter"
	"sort"

	"github.com/kamstrup/intmap"
)

// Phase is the orchestrator's top-level state. Loading lasts until the first
// tracker result arrives, then the session is Active for its lifetime.
type Phase int

const (
	Loading Phase = iota
	Active
)

// Session is cross-round state. High score persistence lives behind a
// ScoreStore; everything else resets with the session.
type Session struct {
	Phase          Phase
	Score          int
	HighScore      int
	WordsCompleted int
}

// Round is the state of one word attempt. A new round replaces the whole
// struct; that replacement is what cancels the countdown and scramble clocks.
type Round struct {
	Word       string
	Difficulty Difficulty

	TimeLeft float64
	Solved   bool
	// CelebrateLeft counts down the post-solve pause before the next
	// round starts.
	CelebrateLeft float64

	// Failed is set once the countdown expires unsolved; GraceLeft then
	// counts down the pause before the next round starts.
	Failed    bool
	GraceLeft float64
	// AdvanceDue is raised after the grace delay; the game loop reacts by
	// starting the next round.
	AdvanceDue bool

	// ScrambleLeft counts down to the next pool reshuffle.
	ScrambleLeft float64
}

// DragState tracks the single active tile. NoTile means idle.
type DragState struct {
	Active TileID
}

// CursorState is the gesture pipeline's per-frame output in canvas
// coordinates.
type CursorState struct {
	X, Y float64
	// Tracked reports whether the last frame contained a hand.
	Tracked bool
	// Pinch is the effective pinch-for-interaction signal.
	Pinch bool
	// PinchDist is the raw normalized fingertip distance, kept for the
	// debug inspector.
	PinchDist float64
}

// World owns all per-frame mutable game state: the tile arena, particles and
// the session/round/drag/cursor singletons. It is passed explicitly to every
// system; nothing in the engine reaches for ambient globals.
type World struct {
	cfg Config

	tiles  []Tile
	index  *intmap.Map[TileID, int32]
	nextID TileID

	particles []Particle

	session Session
	round   Round
	drag    DragState
	cursor  CursorState
}

// NewWorld creates an empty world. Call ResetTiles (usually via
// Game.NewRound) before running the pipeline.
func NewWorld(cfg Config) *World {
	return &World{
		cfg:    cfg,
		index:  intmap.New[TileID, int32](64),
		nextID: 1,
	}
}

// Config returns the engine tuning.
func (w *World) Config() Config {
	return w.cfg
}

// Session returns the session singleton.
func (w *World) Session() *Session {
	return &w.session
}

// Round returns the round singleton.
func (w *World) Round() *Round {
	return &w.round
}

// Drag returns the drag-state singleton.
func (w *World) Drag() *DragState {
	return &w.drag
}

// Cursor returns the cursor singleton.
func (w *World) Cursor() *CursorState {
	return &w.cursor
}

// ResetTiles replaces the whole tile pool with one tile per letter, in slice
// order. Ids keep incrementing across rounds so a stale id from a previous
// round can never resolve.
func (w *World) ResetTiles(letters []rune) {
	w.tiles = make([]Tile, len(letters))
	w.index = intmap.New[TileID, int32](max(len(letters), 1))
	for i, letter := range letters {
		id := w.nextID
		w.nextID++
		w.tiles[i] = Tile{
			ID:        id,
			Letter:    letter,
			Color:     i % len(Palette),
			TrayIndex: -1,
		}
		w.index.Put(id, int32(i))
	}
}

// Tile resolves an id to the live tile, or nil. Pointers stay valid for the
// duration of the round: the pool is never resized mid-round.
func (w *World) Tile(id TileID) *Tile {
	slot, ok := w.index.Get(id)
	if !ok {
		return nil
	}
	return &w.tiles[slot]
}

// TileCount returns the pool size.
func (w *World) TileCount() int {
	return len(w.tiles)
}

// All iterates the tiles in pool order, which is the hit-test tie-break
// order.
func (w *World) All() iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for i := range w.tiles {
			if !yield(&w.tiles[i]) {
				return
			}
		}
	}
}

// TrayTiles returns the tray as a derived view: in-tray tiles in ascending
// TrayIndex order, recomputed on demand.
func (w *World) TrayTiles() []*Tile {
	var tray []*Tile
	for i := range w.tiles {
		if w.tiles[i].InTray {
			tray = append(tray, &w.tiles[i])
		}
	}
	sort.Slice(tray, func(i, j int) bool {
		return tray[i].TrayIndex < tray[j].TrayIndex
	})
	return tray
}

// TrayWord returns the currently spelled word: in-tray letters in tray order.
func (w *World) TrayWord() string {
	tray := w.TrayTiles()
	word := make([]rune, len(tray))
	for i, t := range tray {
		word[i] = t.Letter
	}
	return string(word)
}

// PoolTiles returns the tiles not in the tray, in pool order.
func (w *World) PoolTiles() []*Tile {
	var pool []*Tile
	for i := range w.tiles {
		if !w.tiles[i].InTray {
			pool = append(pool, &w.tiles[i])
		}
	}
	return pool
}
