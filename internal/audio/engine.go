package audio

import (
	"math"
	"time"
)

const (
	// intensityStep is the smallest intensity change that retunes the beep.
	intensityStep = 0.05
	// beepThreshold is the intensity above which the continuous beep runs.
	beepThreshold = 0.1

	minBeepInterval = 50 * time.Millisecond
	maxBeepInterval = 500 * time.Millisecond

	// maxBeepsPerUpdate bounds catch-up after a long stall.
	maxBeepsPerUpdate = 4
)

// BeepInterval is the gap between beeps at the given intensity:
// max(50ms, 500ms - intensity*450ms).
func BeepInterval(intensity float64) time.Duration {
	ms := math.Max(50, 500-intensity*450)
	return time.Duration(ms * float64(time.Millisecond))
}

// Engine owns the audio state of one game session.
type Engine struct {
	sink  Sink
	muted bool

	lastIntensity float64
	active        bool
	intensity     float64
	interval      time.Duration
	elapsed       time.Duration
}

// NewEngine creates an unmuted engine playing into sink. A nil sink discards.
func NewEngine(sink Sink) *Engine {
	if sink == nil {
		sink = Discard{}
	}
	return &Engine{sink: sink}
}

// Trigger plays a one-shot cue unless muted.
func (e *Engine) Trigger(c Cue) {
	if e.muted {
		return
	}
	e.sink.Play(Synthesize(c))
}

// SetIntensity retunes the continuous beep. Changes smaller than 0.05 are
// ignored. Intensity above 0.1 starts the beep, anything else stops it.
func (e *Engine) SetIntensity(v float64) {
	if e.muted || math.Abs(v-e.lastIntensity) < intensityStep {
		return
	}
	e.lastIntensity = v

	if v <= beepThreshold {
		e.active = false
		return
	}

	e.active = true
	e.intensity = v
	e.interval = BeepInterval(v)
	e.elapsed = 0
}

// Stop silences the continuous beep. The next SetIntensity above the
// threshold starts it again.
func (e *Engine) Stop() {
	e.active = false
	e.lastIntensity = 0
}

// Update advances the continuous beep by dt and plays any beeps that fell
// due. Returns how many were played.
func (e *Engine) Update(dt time.Duration) int {
	if !e.active || e.muted || e.interval <= 0 {
		return 0
	}

	e.elapsed += dt
	played := 0
	for e.elapsed >= e.interval {
		e.elapsed -= e.interval
		if played < maxBeepsPerUpdate {
			e.sink.Play(beep(e.intensity))
			played++
		}
	}
	return played
}

// ToggleMute flips mute and returns the new state. Muting stops the beep.
func (e *Engine) ToggleMute() bool {
	e.muted = !e.muted
	if e.muted {
		e.Stop()
	}
	return e.muted
}

// Muted reports whether the engine is muted.
func (e *Engine) Muted() bool { return e.muted }

// Active reports whether the continuous beep is running.
func (e *Engine) Active() bool { return e.active }

// Interval is the current beep interval, 0 when inactive.
func (e *Engine) Interval() time.Duration {
	if !e.active {
		return 0
	}
	return e.interval
}
