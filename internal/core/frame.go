package core

import "time"

// FrameLimiter caps the update rate. Frames that arrive before the interval
// has elapsed are dropped; the next accepted frame keeps the phase of the
// schedule so the average rate does not drift.
type FrameLimiter struct {
	interval time.Duration
	last     time.Time
}

// NewFrameLimiter creates a limiter for the given frames per second.
func NewFrameLimiter(fps int) *FrameLimiter {
	if fps <= 0 {
		fps = 30
	}
	return &FrameLimiter{interval: time.Second / time.Duration(fps)}
}

// Interval returns the target frame interval.
func (f *FrameLimiter) Interval() time.Duration {
	return f.interval
}

// Ready reports whether an update should run at now.
func (f *FrameLimiter) Ready(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return true
	}
	elapsed := now.Sub(f.last)
	if elapsed < f.interval {
		return false
	}
	f.last = now.Add(-(elapsed % f.interval))
	return true
}

// HoldTracker turns repeated key presses into a held state.
// Terminals report no key release, so a key counts as held while presses keep
// arriving within the window.
type HoldTracker struct {
	window time.Duration
	last   time.Time
	held   bool
}

// NewHoldTracker creates a tracker with the given repeat window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a key press.
func (h *HoldTracker) Press(now time.Time) {
	h.last = now
	h.held = true
}

// Release drops the held state immediately.
func (h *HoldTracker) Release() {
	h.held = false
}

// Held reports whether the key is still held at now.
func (h *HoldTracker) Held(now time.Time) bool {
	if h.held && now.Sub(h.last) > h.window {
		h.held = false
	}
	return h.held
}
