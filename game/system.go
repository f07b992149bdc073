package game

// System is one stage of the per-frame pipeline. Systems keep any state that
// must persist between frames in their own fields and mutate the world only
// through the Frame they are handed.
type System interface {
	Execute(f *Frame)
}

// Frame is the context for one pipeline pass.
type Frame struct {
	// DeltaTime is the wall-clock seconds since the previous pass.
	DeltaTime float64
	World     *World
	Effects   *Effects
}

func newFrame(dt float64, world *World) *Frame {
	return &Frame{
		DeltaTime: dt,
		World:     world,
		Effects:   newEffects(),
	}
}
