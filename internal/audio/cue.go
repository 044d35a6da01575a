// Package audio turns game events into sound cues.
//
// The engine holds the continuous detector beep as explicit state advanced by
// Update, so it can be driven from the game tick without timers.
package audio

import "time"

// Kind identifies a sound.
type Kind int

const (
	KindBeep Kind = iota
	KindDig
	KindReveal
	KindCoin
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindBeep:
		return "beep"
	case KindDig:
		return "dig"
	case KindReveal:
		return "reveal"
	case KindCoin:
		return "coin"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Waveform of a note.
type Waveform string

const (
	Sine     Waveform = "sine"
	Triangle Waveform = "triangle"
	Sawtooth Waveform = "sawtooth"
)

// Note is a single tone within a sound.
type Note struct {
	Freq     float64 // Hz at start
	FreqEnd  float64 // Hz at end, 0 for a constant pitch
	Offset   time.Duration
	Duration time.Duration
	Gain     float64
	Wave     Waveform
}

// Sound is what a Sink plays.
type Sound struct {
	Kind  Kind
	Notes []Note
}

// Cue is a one-shot sound request.
type Cue struct {
	Kind Kind
	Tier int // metal tier, for reveals
}

// One-shot cues.
var (
	CueDig   = Cue{Kind: KindDig}
	CueCoin  = Cue{Kind: KindCoin}
	CueError = Cue{Kind: KindError}
)

// CueReveal is the arpeggio played when an item of the given tier is dug up.
func CueReveal(tier int) Cue {
	return Cue{Kind: KindReveal, Tier: tier}
}

// RevealPitch is the base frequency of a reveal: higher tiers sound higher.
func RevealPitch(tier int) float64 {
	return 400 + float64(tier)*50
}

// BeepPitch maps detector intensity to 300..1000 Hz.
func BeepPitch(intensity float64) float64 {
	return 300 + intensity*700
}

// Synthesize renders a cue into notes.
func Synthesize(c Cue) Sound {
	switch c.Kind {
	case KindDig:
		return Sound{Kind: KindDig, Notes: []Note{
			{Freq: 150, Duration: 200 * time.Millisecond, Gain: 0.2, Wave: Triangle},
		}}
	case KindReveal:
		base := RevealPitch(c.Tier)
		ratios := []float64{1, 1.25, 1.5, 2}
		notes := make([]Note, len(ratios))
		for i, r := range ratios {
			notes[i] = Note{
				Freq:     base * r,
				Offset:   time.Duration(i) * 100 * time.Millisecond,
				Duration: 300 * time.Millisecond,
				Gain:     0.2,
				Wave:     Sine,
			}
		}
		return Sound{Kind: KindReveal, Notes: notes}
	case KindCoin:
		return Sound{Kind: KindCoin, Notes: []Note{
			{Freq: 880, FreqEnd: 1320, Duration: 150 * time.Millisecond, Gain: 0.15, Wave: Sine},
		}}
	case KindError:
		return Sound{Kind: KindError, Notes: []Note{
			{Freq: 200, Duration: 200 * time.Millisecond, Gain: 0.1, Wave: Sawtooth},
		}}
	default:
		return Sound{Kind: c.Kind}
	}
}

func beep(intensity float64) Sound {
	return Sound{Kind: KindBeep, Notes: []Note{
		{Freq: BeepPitch(intensity), Duration: 50 * time.Millisecond, Gain: 0.1 * intensity, Wave: Sine},
	}}
}
