package game

// SettleSystem eases every non-dragging tile toward its target position each
// frame. It is purely cosmetic, never touches logical state, and runs
// unconditionally: tiles keep arriving at rest even after the round is
// solved.
type SettleSystem struct{}

// Execute applies one easing step on both axes independently.
func (s *SettleSystem) Execute(f *Frame) {
	ease := f.World.Config().EaseFactor
	for tile := range f.World.All() {
		if tile.Dragging {
			continue
		}
		tile.X += (tile.TargetX - tile.X) * ease
		tile.Y += (tile.TargetY - tile.Y) * ease
	}
}
