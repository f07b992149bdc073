package game

import "math"

// RoundClockSystem drives the round countdown. A solve cancels the countdown:
// Solved short-circuits every later frame, so cancelling is a no-op after the
// first. When the clock runs out unsolved, the system emits the fail cue once,
// waits out the grace delay and then flags the round for advancement.
type RoundClockSystem struct{}

// tickWindowSeconds is how far into the countdown the per-second tick cue
// starts.
const tickWindowSeconds = 10

// Execute advances the countdown by one frame.
func (s *RoundClockSystem) Execute(f *Frame) {
	round := f.World.Round()
	if round.Word == "" {
		return
	}

	if round.Solved {
		// The countdown is cancelled; only the celebration pause runs.
		round.CelebrateLeft -= f.DeltaTime
		if round.CelebrateLeft <= 0 {
			round.AdvanceDue = true
		}
		return
	}

	if round.Failed {
		round.GraceLeft -= f.DeltaTime
		if round.GraceLeft <= 0 {
			round.AdvanceDue = true
		}
		return
	}

	prev := round.TimeLeft
	round.TimeLeft -= f.DeltaTime

	if round.TimeLeft <= 0 {
		round.TimeLeft = 0
		round.Failed = true
		round.GraceLeft = f.World.Config().GraceSeconds
		f.Effects.Cue(CueFail)
		return
	}

	// One tick per whole second inside the closing window.
	if round.TimeLeft <= tickWindowSeconds && math.Floor(prev) != math.Floor(round.TimeLeft) {
		f.Effects.Cue(CueTick)
	}
}
