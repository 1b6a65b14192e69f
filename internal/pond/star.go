package pond

import "math"

// Star twinkles in the upper sky. Visibility is gated by the current day
// phase; brightness oscillates independently per star.
type Star struct {
	Pos          Vec2    `json:"pos"`
	Size         float64 `json:"size"`
	TwinklePhase float64 `json:"twinklePhase"`
	Visible      bool    `json:"visible"`
}

// Advance progresses the twinkle oscillation and stores the phase gate.
func (s *Star) Advance(dt, twinkleSpeed float64, visible bool) {
	s.TwinklePhase += twinkleSpeed * dt
	s.Visible = visible
}

// Brightness returns the current brightness in [0, 1].
func (s Star) Brightness(base, swing float64) float64 {
	return Clamp(base+swing*math.Sin(s.TwinklePhase), 0, 1)
}
