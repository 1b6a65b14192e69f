package pond

import "math"

// Fish patrols the pond at a fixed depth, swaying as it swims, and
// occasionally leaps above the surface. A fish is ambient population: it is
// seeded once and never culled.
type Fish struct {
	Pos       Vec2    `json:"pos"`
	BaseY     float64 `json:"baseY"`
	Dir       float64 `json:"dir"` // +1 right, -1 left
	Size      float64 `json:"size"`
	SwimPhase float64 `json:"swimPhase"`
	Leaping   bool    `json:"leaping"`
	leapVel   float64
}

// FishTuning bundles the movement constants a fish needs each frame.
type FishTuning struct {
	SwimSpeed     float64
	SwayAmplitude float64
	SwayFrequency float64
	LeapGravity   float64
	MinX, MaxX    float64
}

// Advance moves the fish one frame. While leaping the vertical position
// follows a gravity arc that lands back at BaseY; otherwise the fish drifts
// laterally, bouncing off the pond margins, with a sinusoidal sway.
func (f *Fish) Advance(dt float64, tune FishTuning) {
	if f.Leaping {
		f.Pos.Y += f.leapVel * dt
		f.leapVel += tune.LeapGravity * dt
		if f.Pos.Y >= f.BaseY {
			f.Pos.Y = f.BaseY
			f.leapVel = 0
			f.Leaping = false
		}
		return
	}

	f.SwimPhase += tune.SwayFrequency * dt
	f.Pos.X += tune.SwimSpeed * f.Dir * dt
	f.Pos.Y = f.BaseY + math.Sin(f.SwimPhase)*tune.SwayAmplitude

	if f.Pos.X < tune.MinX {
		f.Pos.X = tune.MinX
		f.Dir = 1
	} else if f.Pos.X > tune.MaxX {
		f.Pos.X = tune.MaxX
		f.Dir = -1
	}
}

// StartLeap kicks the fish into its jump arc. A fish already airborne
// ignores the request, so at most one leap runs at a time.
func (f *Fish) StartLeap(impulse float64) {
	if f.Leaping {
		return
	}
	f.Leaping = true
	f.leapVel = impulse
}
