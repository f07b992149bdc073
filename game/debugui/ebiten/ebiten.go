// Package ebiten provides Dear ImGui backend integration for the Ebiten game
// engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to draw the debugui overlay inside an Ebiten game loop: BeginFrame
// before rendering panels, EndFrame after, Draw in the game's Draw.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// New creates a backend bound to a window of the given size.
func New(title string, width, height int) *ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	return &ImguiBackend{EbitenBackend: b}
}
