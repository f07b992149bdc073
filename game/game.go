package game

import (
	"fmt"
	"strings"

	"github.com/plus3/pinchspell/gesture"
)

// WordPicker supplies target words. Pick selects uniformly at random with
// replacement from the {category, difficulty} list.
type WordPicker interface {
	Pick(category string, d Difficulty) (string, error)
}

// ScoreStore persists the single high-score value across sessions.
type ScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// MemoryScoreStore is an in-process ScoreStore for tests and headless runs.
type MemoryScoreStore struct {
	score int
}

// HighScore implements ScoreStore.
func (m *MemoryScoreStore) HighScore() (int, error) {
	return m.score, nil
}

// SetHighScore implements ScoreStore.
func (m *MemoryScoreStore) SetHighScore(score int) error {
	m.score = score
	return nil
}

// Game wires the world, the system pipeline and the external collaborators
// into one session. All methods must be called from a single goroutine.
type Game struct {
	cfg      Config
	world    *World
	pipeline *Pipeline
	tracking *TrackingSystem

	words    WordPicker
	store    ScoreStore
	category string

	savedHigh int
}

// New assembles a game session. source delivers tracker frames, sink receives
// audio cues (nil for silence) and store persists the high score (nil for
// in-memory only).
func New(cfg Config, source gesture.Source, words WordPicker, sink CueSink, store ScoreStore, category string) (*Game, error) {
	if words == nil {
		return nil, fmt.Errorf("game: word picker is required")
	}
	if store == nil {
		store = &MemoryScoreStore{}
	}

	world := NewWorld(cfg)
	g := &Game{
		cfg:      cfg,
		world:    world,
		tracking: NewTrackingSystem(cfg, source),
		words:    words,
		store:    store,
		category: category,
	}

	high, err := store.HighScore()
	if err != nil {
		return nil, fmt.Errorf("game: load high score: %w", err)
	}
	world.Session().HighScore = high
	g.savedHigh = high

	g.pipeline = NewPipeline(world, sink)
	g.pipeline.Register(g.tracking)
	g.pipeline.Register(&DragSystem{})
	g.pipeline.Register(&ScrambleSystem{})
	g.pipeline.Register(&RoundClockSystem{})
	g.pipeline.Register(&SettleSystem{})
	g.pipeline.Register(&ParticleSystem{})

	if err := g.NewRound(); err != nil {
		return nil, err
	}
	return g, nil
}

// World returns the live world, for rendering and inspection.
func (g *Game) World() *World {
	return g.world
}

// Pipeline returns the system pipeline, for timing inspection.
func (g *Game) Pipeline() *Pipeline {
	return g.pipeline
}

// Tracking returns the gesture stage, for the debug inspector.
func (g *Game) Tracking() *TrackingSystem {
	return g.tracking
}

// NewRound picks a fresh target word and rebuilds the tile pool in bulk.
// Replacing the round singleton is also what cancels the countdown and
// scramble clocks of the previous round.
func (g *Game) NewRound() error {
	word, err := g.words.Pick(g.category, g.cfg.Difficulty)
	if err != nil {
		return fmt.Errorf("game: pick word: %w", err)
	}
	word = strings.ToUpper(word)

	*g.world.Round() = Round{
		Word:         word,
		Difficulty:   g.cfg.Difficulty,
		TimeLeft:     g.cfg.RoundSeconds,
		ScrambleLeft: g.cfg.ScrambleSeconds,
	}
	g.world.Drag().Active = NoTile
	g.world.ResetTiles(PoolLetters(word))
	PlacePool(g.cfg, g.world.PoolTiles(), true)
	return nil
}

// Update runs one frame: the full system pipeline, then round advancement
// and high-score persistence. dt is the wall-clock seconds since the last
// call.
func (g *Game) Update(dt float64) error {
	g.pipeline.Once(dt)

	session := g.world.Session()
	if session.HighScore > g.savedHigh {
		if err := g.store.SetHighScore(session.HighScore); err != nil {
			return fmt.Errorf("game: save high score: %w", err)
		}
		g.savedHigh = session.HighScore
	}

	if g.world.Round().AdvanceDue {
		return g.NewRound()
	}
	return nil
}
