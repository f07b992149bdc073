package main

import (
	"math"

	"github.com/plus3/pinchspell/game"
	"github.com/plus3/pinchspell/gesture"
)

// Bot is a synthetic player implementing gesture.Source. Each step it looks
// at the live world, steers a virtual hand toward the next needed letter,
// pinches, drags it to the tray line and releases. It exercises every
// transition of the drag state machine at tracker rate.
type Bot struct {
	cfg   game.Config
	world *game.World

	x, y     float64 // canvas coordinates
	pinching bool
	frame    gesture.Frame
	fresh    bool
}

// handSpeed is the bot's hand speed in canvas pixels per second.
const handSpeed = 1600

// NewBot creates a bot for the given engine tuning.
func NewBot(cfg game.Config) *Bot {
	return &Bot{
		cfg: cfg,
		x:   cfg.CanvasWidth / 2,
		y:   cfg.CanvasHeight / 2,
	}
}

// Attach gives the bot its view of the world. Must be called before Step.
func (b *Bot) Attach(w *game.World) {
	b.world = w
}

// Step advances the virtual hand by dt seconds and records a tracker frame.
func (b *Bot) Step(dt float64) {
	targetX, targetY, wantPinch := b.plan()
	b.moveToward(targetX, targetY, dt)
	b.pinching = wantPinch
	b.record()
}

// plan decides where the hand is going this frame.
func (b *Bot) plan() (x, y float64, pinch bool) {
	round := b.world.Round()
	drag := b.world.Drag().Active

	if drag != game.NoTile {
		// Carry the held tile to the tray line and release there.
		if math.Abs(b.y-b.cfg.TrayLineY) < b.cfg.TrayCaptureBand/2 {
			return b.x, b.y, false
		}
		return b.cfg.CanvasWidth / 2, b.cfg.TrayLineY, true
	}

	tile := b.nextTile(round.Word)
	if tile == nil {
		// Nothing left to do; hover until the round advances.
		return b.cfg.CanvasWidth / 2, b.cfg.CanvasHeight / 2, false
	}

	// Pinch only once the hand is over the tile, so the confirmation
	// counter fills while the hit test already passes.
	over := math.Abs(b.x-tile.X) < b.cfg.TileSize/4 && math.Abs(b.y-tile.Y) < b.cfg.TileSize/4
	return tile.X, tile.Y, over
}

// nextTile returns a pool tile carrying the next letter the tray needs, or
// nil when the tray already spells the target.
func (b *Bot) nextTile(target string) *game.Tile {
	trayWord := b.world.TrayWord()
	if len(trayWord) >= len(target) {
		return nil
	}
	need := rune(target[len(trayWord)])

	for _, t := range b.world.PoolTiles() {
		if t.Letter == need && !t.Dragging {
			return t
		}
	}
	return nil
}

func (b *Bot) moveToward(x, y, dt float64) {
	dx := x - b.x
	dy := y - b.y
	dist := math.Hypot(dx, dy)
	step := handSpeed * dt
	if dist <= step || dist == 0 {
		b.x = x
		b.y = y
		return
	}
	b.x += dx / dist * step
	b.y += dy / dist * step
}

// record converts the virtual hand into a normalized tracker frame.
func (b *Bot) record() {
	cx := b.x / b.cfg.CanvasWidth
	cy := b.y / b.cfg.CanvasHeight

	offset := 0.08
	if b.pinching {
		offset = 0.01
	}

	var hand gesture.Hand
	hand.Landmarks[gesture.IndexTip] = gesture.Point{X: cx - offset/2, Y: cy}
	hand.Landmarks[gesture.ThumbTip] = gesture.Point{X: cx + offset/2, Y: cy}

	b.frame = gesture.Frame{Hands: []gesture.Hand{hand}}
	b.fresh = true
}

// Next implements gesture.Source.
func (b *Bot) Next() (gesture.Frame, bool) {
	if !b.fresh {
		return gesture.Frame{}, false
	}
	b.fresh = false
	return b.frame, true
}
