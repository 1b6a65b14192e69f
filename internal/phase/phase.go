// Package phase maps wall-clock time onto the pond's day/night cycle.
package phase

import (
	"math"
	"time"

	"pond-pet/widget/internal/config"
)

// Phase names the current segment of the day/night cycle.
type Phase string

const (
	Dawn      Phase = "dawn"
	Morning   Phase = "morning"
	Noon      Phase = "noon"
	Afternoon Phase = "afternoon"
	Evening   Phase = "evening"
	Dusk      Phase = "dusk"
	Night     Phase = "night"
)

// State is the derived environmental state for a single instant. It carries
// no identity: it is recomputed from the clock every tick and two calls with
// the same timestamp always agree.
type State struct {
	Phase        Phase   `json:"phase"`
	Hour         float64 `json:"hour"`
	SunElevation float64 `json:"sunElevation"`
	MoonVisible  bool    `json:"moonVisible"`
}

// Resolver buckets hours into phases and shapes the sun arc. The bucket
// edges and the daylight window are independent so the palette and the sun
// trajectory can be tuned separately.
type Resolver struct {
	sky config.SkyConfig
}

// NewResolver builds a resolver from the sky section of the config.
func NewResolver(sky config.SkyConfig) Resolver {
	return Resolver{sky: sky}
}

// Resolve derives the phase state for the given instant. Pure: no clock
// access, no mutation.
func (r Resolver) Resolve(at time.Time) State {
	hour := hourOfDay(at)
	phase := r.bucket(hour)
	return State{
		Phase:        phase,
		Hour:         hour,
		SunElevation: r.sunElevation(hour),
		MoonVisible:  phase == Night,
	}
}

// SunUp reports whether the sun is above the horizon at the given hour.
func (r Resolver) SunUp(hour float64) bool {
	return hour >= r.sky.SunriseHour && hour <= r.sky.SunsetHour
}

// Daylight reports whether the phase counts as full daylight. Rain never
// spawns on its own during these phases and stars stay hidden.
func Daylight(p Phase) bool {
	switch p {
	case Morning, Noon, Afternoon:
		return true
	}
	return false
}

// StarBrightness scales star rendering for the phase: full at night, faint
// in the transition phases, zero in daylight.
func StarBrightness(p Phase) float64 {
	switch p {
	case Night:
		return 1
	case Dusk, Dawn:
		return 0.5
	default:
		return 0
	}
}

// bucket picks the named phase for an hour. Edges come straight from the
// config; anything outside every bucket is night.
func (r Resolver) bucket(hour float64) Phase {
	s := r.sky
	switch {
	case hour >= s.DawnStart && hour < s.MorningStart:
		return Dawn
	case hour >= s.MorningStart && hour < s.NoonStart:
		return Morning
	case hour >= s.NoonStart && hour < s.AfternoonStart:
		return Noon
	case hour >= s.AfternoonStart && hour < s.EveningStart:
		return Afternoon
	case hour >= s.EveningStart && hour < s.DuskStart:
		return Evening
	case hour >= s.DuskStart && hour < s.NightStart:
		return Dusk
	default:
		return Night
	}
}

// sunElevation follows a sine arc from sunrise to sunset, peaking at 1, and
// mirrors below the horizon overnight so dusk and deep night are
// distinguishable to the renderer.
func (r Resolver) sunElevation(hour float64) float64 {
	rise := r.sky.SunriseHour
	set := r.sky.SunsetHour
	if hour >= rise && hour <= set {
		return math.Sin(math.Pi * (hour - rise) / (set - rise))
	}
	nightLen := 24 - (set - rise)
	if nightLen <= 0 {
		return 0
	}
	elapsed := hour - set
	if hour < rise {
		elapsed = hour + 24 - set
	}
	return -math.Sin(math.Pi * elapsed / nightLen)
}

func hourOfDay(at time.Time) float64 {
	return float64(at.Hour()) +
		float64(at.Minute())/60 +
		float64(at.Second())/3600 +
		float64(at.Nanosecond())/3.6e12
}
