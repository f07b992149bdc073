package game

import (
	"math"
	"math/rand/v2"
	"strings"
)

// PoolLetters builds the letter multiset for a target word: one of each
// alphabet letter, plus one extra copy for every occurrence in the word
// beyond what the alphabet already supplies. The result is shuffled, which
// also randomizes the hit-test tie-break order for the round.
func PoolLetters(word string) []rune {
	letters := make([]rune, 0, 32)
	for r := 'A'; r <= 'Z'; r++ {
		letters = append(letters, r)
	}

	counts := make(map[rune]int)
	for _, r := range strings.ToUpper(word) {
		counts[r]++
	}
	for r, n := range counts {
		for i := 1; i < n; i++ {
			letters = append(letters, r)
		}
	}

	rand.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return letters
}

// poolSlots computes the scrambled-pool position for each of n tiles: rows of
// RowCapacity, each row horizontally centered, stacked bottom-up above the
// bottom margin.
func poolSlots(cfg Config, n int) [][2]float64 {
	slots := make([][2]float64, n)
	if n == 0 {
		return slots
	}

	slotWidth := cfg.TileSize * cfg.TraySpacing
	rows := int(math.Ceil(float64(n) / float64(cfg.RowCapacity)))

	i := 0
	for row := 0; row < rows; row++ {
		count := cfg.RowCapacity
		if remaining := n - row*cfg.RowCapacity; remaining < count {
			count = remaining
		}
		rowWidth := float64(count) * slotWidth
		startX := (cfg.CanvasWidth-rowWidth)/2 + slotWidth/2
		y := cfg.CanvasHeight - cfg.PoolBottomMargin - cfg.TileSize/2 - float64(row)*cfg.PoolRowGap

		for col := 0; col < count; col++ {
			slots[i] = [2]float64{startX + float64(col)*slotWidth, y}
			i++
		}
	}
	return slots
}

// PlacePool lays out the given tiles over the pool slots. When snap is true
// the tiles jump straight to their slots (round start); otherwise they keep
// their positions and ease toward the new targets (scramble).
func PlacePool(cfg Config, tiles []*Tile, snap bool) {
	slots := poolSlots(cfg, len(tiles))
	for i, t := range tiles {
		if snap {
			t.Snap(slots[i][0], slots[i][1])
		} else {
			t.SetTarget(slots[i][0], slots[i][1])
		}
	}
}

// trayTargetX returns the centered x position of tray slot i out of n.
func trayTargetX(cfg Config, i, n int) float64 {
	slotWidth := cfg.TileSize * cfg.TraySpacing
	rowWidth := float64(n) * slotWidth
	startX := (cfg.CanvasWidth-rowWidth)/2 + slotWidth/2
	return startX + float64(i)*slotWidth
}

// ReindexTray rebuilds the whole tray assignment from the tiles themselves:
// in-tray tiles keep their relative order, indices are reassigned 0..n-1 and
// every tray tile's target is moved to its centered slot on the tray line.
// Always recomputing the full assignment is what keeps TrayIndex a contiguous
// permutation after any membership change.
func ReindexTray(cfg Config, w *World) {
	tray := w.TrayTiles()
	for i, t := range tray {
		t.TrayIndex = i
		t.SetTarget(trayTargetX(cfg, i, len(tray)), cfg.TrayLineY)
	}
}
