package game

// Cue names one of the fire-and-forget audio events the game emits. Sinks may
// drop cues; nothing in the engine depends on them being heard.
type Cue int

const (
	CueGrab Cue = iota
	CueDrop
	CueSuccess
	CueFail
	CueTick
)

func (c Cue) String() string {
	switch c {
	case CueGrab:
		return "grab"
	case CueDrop:
		return "drop"
	case CueSuccess:
		return "success"
	case CueFail:
		return "fail"
	case CueTick:
		return "tick"
	default:
		return "unknown"
	}
}

// CueSink receives audio cues. Play must not block.
type CueSink interface {
	Play(c Cue)
}

// NopSink discards all cues.
type NopSink struct{}

// Play implements CueSink.
func (NopSink) Play(Cue) {}

// Effects buffers side effects requested by systems during a pass. The buffer
// is flushed after every system has run, so external collaborators are never
// touched mid-frame.
type Effects struct {
	cues   []Cue
	defers []func()
}

func newEffects() *Effects {
	return &Effects{}
}

// Cue queues an audio cue.
func (e *Effects) Cue(c Cue) {
	e.cues = append(e.cues, c)
}

// Defer queues a function to run at flush time, after all cues.
func (e *Effects) Defer(fn func()) {
	e.defers = append(e.defers, fn)
}

// Cues returns the queued cues in emit order.
func (e *Effects) Cues() []Cue {
	return e.cues
}

// Flush delivers the queued cues to sink and runs the deferred functions,
// resetting the buffer state.
func (e *Effects) Flush(sink CueSink) {
	for _, c := range e.cues {
		sink.Play(c)
	}
	for _, fn := range e.defers {
		fn()
	}
	e.cues = e.cues[:0]
	e.defers = e.defers[:0]
}
