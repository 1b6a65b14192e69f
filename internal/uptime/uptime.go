// Package uptime measures continuous runtime and unlocks the rare scene
// after the configured number of days.
package uptime

import (
	"math"
	"time"
)

// State is the per-tick view of the tracker.
type State struct {
	ContinuousSeconds float64 `json:"continuousSeconds"`
	Days              int     `json:"days"`
	Unlocked          bool    `json:"unlocked"`
}

// Tracker accumulates frame deltas. A single frame delta is clamped to
// MaxFrameDelta before accumulating so a system sleep or debugger stall
// cannot jump the unlock threshold in one tick. Once Unlocked flips true it
// stays true for the life of the process.
type Tracker struct {
	seconds   float64
	threshold float64
	maxDelta  float64
	unlocked  bool
}

// NewTracker builds a tracker that unlocks after unlockDays of accumulated
// runtime, clamping each frame delta to maxFrameDelta seconds.
func NewTracker(unlockDays, maxFrameDelta float64) *Tracker {
	if unlockDays <= 0 {
		unlockDays = 3
	}
	if maxFrameDelta <= 0 {
		maxFrameDelta = 1
	}
	return &Tracker{
		threshold: unlockDays * 24 * 60 * 60,
		maxDelta:  maxFrameDelta,
	}
}

// Restore seeds the accumulated seconds, typically from a persisted state
// file. Negative or non-finite values are ignored.
func (t *Tracker) Restore(seconds float64) {
	if t == nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return
	}
	t.seconds = seconds
	if t.seconds >= t.threshold {
		t.unlocked = true
	}
}

// Advance accumulates one frame's elapsed time and returns the new state.
// Out-of-range deltas clamp silently: negative or non-finite become zero,
// spikes cap at the configured maximum.
func (t *Tracker) Advance(delta float64) State {
	if t == nil {
		return State{}
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		delta = 0
	}
	if delta > t.maxDelta {
		delta = t.maxDelta
	}
	t.seconds += delta
	if t.seconds >= t.threshold {
		t.unlocked = true
	}
	return t.State()
}

// State returns the current view without advancing.
func (t *Tracker) State() State {
	if t == nil {
		return State{}
	}
	return State{
		ContinuousSeconds: t.seconds,
		Days:              int(t.seconds / (24 * 60 * 60)),
		Unlocked:          t.unlocked,
	}
}

// Threshold returns the unlock threshold in seconds.
func (t *Tracker) Threshold() float64 {
	if t == nil {
		return 0
	}
	return t.threshold
}

// DeltaSeconds converts a wall-clock interval into the float delta the
// tracker and the simulation consume.
func DeltaSeconds(d time.Duration) float64 {
	return d.Seconds()
}
