// Package audio synthesizes the game's cue sounds with beep. Everything is
// generated, no sample assets; a failed speaker init degrades to silence.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates an oscillator streamer.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s in an attack/sustain/release volume envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer. math.Log2(0) is -Inf, so zero volume is
// rendered as silence instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

const (
	ms = time.Millisecond

	grabDuration = 80 * ms
	tickDuration = 60 * ms
)

// grabSound is a short soft blip for picking a tile up.
func grabSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(660, grabDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, grabDuration, 5*ms, 40*ms, rate)
	return newVolume(shaped, vol*0.5)
}

// dropSound is a two-tone chime for a tile landing in the tray.
func dropSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(523.25, 70*ms, WaveSine, rate), 70*ms, 5*ms, 30*ms, rate)
	n2 := NewEnvelope(NewOscillator(783.99, 70*ms, WaveSine, rate), 70*ms, 5*ms, 40*ms, rate)
	return newVolume(beep.Seq(n1, n2), vol*0.6)
}

// successSound is a rising arpeggio for a solved word.
func successSound(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, len(notes))
	for i, freq := range notes {
		parts[i] = NewEnvelope(NewOscillator(freq, 120*ms, WaveSquare, rate), 120*ms, 5*ms, 60*ms, rate)
	}
	return newVolume(beep.Seq(parts...), vol*0.45)
}

// failSound is a falling buzz for an expired round.
func failSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(220, 200*ms, WaveSquare, rate), 200*ms, 5*ms, 80*ms, rate)
	n2 := NewEnvelope(NewOscillator(164.81, 250*ms, WaveSquare, rate), 250*ms, 5*ms, 150*ms, rate)
	return newVolume(beep.Seq(n1, n2), vol*0.5)
}

// tickSound is a faint click for the countdown's closing seconds.
func tickSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(0, tickDuration, WaveNoise, rate)
	shaped := NewEnvelope(osc, tickDuration, 2*ms, 50*ms, rate)
	return newVolume(shaped, vol*0.25)
}
