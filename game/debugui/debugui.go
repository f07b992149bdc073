// Package debugui renders Dear ImGui inspector panels over a live game:
// the gesture pipeline's internals, the tile arena and the system pipeline
// timings. The core engine never imports it.
package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/pinchspell/game"
)

// Overlay draws all inspector panels for one frame. Call it between the
// backend's NewFrame and Render.
type Overlay struct {
	stats GestureStatsPanel
}

// NewOverlay creates an overlay with default panel state.
func NewOverlay() *Overlay {
	return &Overlay{
		stats: NewGestureStatsPanel(120),
	}
}

// Render draws every panel.
func (o *Overlay) Render(g *game.Game, deltaTime float32) {
	o.stats.Render(g.Pipeline(), deltaTime)
	RenderGestureInspector(g)
	RenderTileBrowser(g.World())
}

// RenderGestureInspector shows the live gesture state: cursor, pinch
// distance against both thresholds, the confirmation counter and the drag
// state machine.
func RenderGestureInspector(g *game.Game) {
	if !imgui.BeginV("Gesture Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	w := g.World()
	cfg := w.Config()
	cursor := w.Cursor()
	classifier := g.Tracking().Classifier()

	imgui.Text(fmt.Sprintf("Phase: %s", phaseName(w.Session().Phase)))
	imgui.Text(fmt.Sprintf("Tracked: %v", cursor.Tracked))
	imgui.Text(fmt.Sprintf("Cursor: (%.1f, %.1f)", cursor.X, cursor.Y))
	imgui.Separator()

	imgui.Text(fmt.Sprintf("Pinch dist: %.4f", cursor.PinchDist))
	imgui.Text(fmt.Sprintf("Grab threshold: %.4f", cfg.Pinch.GrabThreshold))
	imgui.Text(fmt.Sprintf("Release threshold: %.4f", cfg.Pinch.ReleaseThreshold))
	imgui.Text(fmt.Sprintf("Confirm frames: %d / %d", classifier.Frames(), cfg.Pinch.ConfirmFrames))
	imgui.Text(fmt.Sprintf("Confirmed: %v", classifier.Confirmed()))
	imgui.Text(fmt.Sprintf("Effective pinch: %v", cursor.Pinch))
	imgui.Separator()

	drag := w.Drag()
	if drag.Active == game.NoTile {
		imgui.Text("Drag state: Idle")
	} else {
		tile := w.Tile(drag.Active)
		imgui.Text(fmt.Sprintf("Drag state: Dragging(%d)", drag.Active))
		if tile != nil {
			imgui.Text(fmt.Sprintf("Held letter: %c", tile.Letter))
		}
	}

	round := w.Round()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Target: %s", round.Word))
	imgui.Text(fmt.Sprintf("Tray: %q", w.TrayWord()))
	imgui.Text(fmt.Sprintf("Time left: %.1fs", round.TimeLeft))
	imgui.Text(fmt.Sprintf("Solved: %v  Failed: %v", round.Solved, round.Failed))

	imgui.End()
}

// RenderTileBrowser lists every tile with its logical fields.
func RenderTileBrowser(w *game.World) {
	if !imgui.BeginV("Tile Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("TileTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Letter")
		imgui.TableSetupColumn("Pos")
		imgui.TableSetupColumn("Target")
		imgui.TableSetupColumn("Tray")
		imgui.TableSetupColumn("Dragging")
		imgui.TableHeadersRow()

		for tile := range w.All() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", tile.ID))
			imgui.TableNextColumn()
			imgui.Text(string(tile.Letter))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%.0f, %.0f)", tile.X, tile.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("(%.0f, %.0f)", tile.TargetX, tile.TargetY))
			imgui.TableNextColumn()
			if tile.InTray {
				imgui.Text(fmt.Sprintf("#%d", tile.TrayIndex))
			} else {
				imgui.Text("-")
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%v", tile.Dragging))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func phaseName(p game.Phase) string {
	if p == game.Loading {
		return "Loading"
	}
	return "Active"
}
