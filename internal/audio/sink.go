package audio

import (
	"io"
	"time"
)

// Sink plays sounds.
type Sink interface {
	Play(Sound)
}

// Discard drops every sound.
type Discard struct{}

func (Discard) Play(Sound) {}

// BellSink rings the terminal bell. Terminals cannot play tones, so pitch is
// lost; rings closer than MinGap are merged.
type BellSink struct {
	W      io.Writer
	MinGap time.Duration

	now  func() time.Time
	last time.Time
}

// NewBellSink rings at most every 80ms.
func NewBellSink(w io.Writer) *BellSink {
	return &BellSink{W: w, MinGap: 80 * time.Millisecond, now: time.Now}
}

func (b *BellSink) Play(s Sound) {
	if len(s.Notes) == 0 {
		return
	}
	now := b.now()
	if !b.last.IsZero() && now.Sub(b.last) < b.MinGap {
		return
	}
	b.last = now
	b.W.Write([]byte{'\a'}) //nolint:errcheck
}

// Recorder keeps every sound it is given.
type Recorder struct {
	Sounds []Sound
}

func (r *Recorder) Play(s Sound) {
	r.Sounds = append(r.Sounds, s)
}

// Count returns how many sounds of kind k were played.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, s := range r.Sounds {
		if s.Kind == k {
			n++
		}
	}
	return n
}

// Reset forgets recorded sounds.
func (r *Recorder) Reset() {
	r.Sounds = nil
}
