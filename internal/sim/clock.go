package sim

import "time"

// Clock abstracts wall-clock sampling so tests can drive the engine with a
// manual time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a test clock advanced by hand.
type ManualClock struct {
	current time.Time
}

// NewManualClock starts a manual clock at the given instant.
func NewManualClock(at time.Time) *ManualClock {
	return &ManualClock{current: at}
}

func (c *ManualClock) Now() time.Time { return c.current }

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

// Set jumps the clock to an absolute instant, including backwards, to
// exercise the engine's bad-delta handling.
func (c *ManualClock) Set(at time.Time) { c.current = at }
