package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/plus3/pinchspell/game"
)

const defaultSampleRate = beep.SampleRate(48000)

// Player implements game.CueSink on top of a beep speaker. Cues are
// fire-and-forget: each Play mixes a freshly synthesized streamer and
// returns. If the speaker could not be initialized the player stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewPlayer creates a player and tries to open the speaker. The error is
// informational; the returned player is always usable and simply drops cues
// when the speaker is unavailable.
func NewPlayer(volume float64) (*Player, error) {
	p := &Player{
		mixer:  &beep.Mixer{},
		rate:   defaultSampleRate,
		volume: volume,
	}

	err := speaker.Init(p.rate, p.rate.N(time.Millisecond*100))
	if err != nil {
		return p, err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p, nil
}

// Play implements game.CueSink.
func (p *Player) Play(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	var s beep.Streamer
	switch c {
	case game.CueGrab:
		s = grabSound(p.rate, p.volume)
	case game.CueDrop:
		s = dropSound(p.rate, p.volume)
	case game.CueSuccess:
		s = successSound(p.rate, p.volume)
	case game.CueFail:
		s = failSound(p.rate, p.volume)
	case game.CueTick:
		s = tickSound(p.rate, p.volume)
	default:
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself has no close in beep; clearing
// the mixer is enough to stop all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
