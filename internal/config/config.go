package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const defaultSeed = "pond"

// Config carries every tuning knob for the widget. It is loaded once at
// startup and shared read-only afterwards.
type Config struct {
	Seed    string        `toml:"seed" json:"seed"`
	Window  WindowConfig  `toml:"window" json:"window"`
	Sky     SkyConfig     `toml:"sky" json:"sky"`
	Drops   DropConfig    `toml:"drops" json:"drops"`
	Rain    RainConfig    `toml:"rain" json:"rain"`
	Ripples RippleConfig  `toml:"ripples" json:"ripples"`
	Fish    FishConfig    `toml:"fish" json:"fish"`
	Lotus   LotusConfig   `toml:"lotus" json:"lotus"`
	Stars   StarConfig    `toml:"stars" json:"stars"`
	Uptime  UptimeConfig  `toml:"uptime" json:"uptime"`
	Logging LoggingConfig `toml:"logging" json:"logging"`
}

// WindowConfig controls the widget surface and the simulation rate.
type WindowConfig struct {
	Width  int `toml:"width" json:"width"`
	Height int `toml:"height" json:"height"`
	TPS    int `toml:"tps" json:"tps"`
}

// SkyConfig holds the daylight window and the phase bucket boundaries.
// Bucket edges are deliberately independent from the sunrise/sunset hours so
// the sky palette and the sun arc can be tuned separately.
type SkyConfig struct {
	SunriseHour float64 `toml:"sunrise_hour" json:"sunriseHour"`
	SunsetHour  float64 `toml:"sunset_hour" json:"sunsetHour"`

	DawnStart      float64 `toml:"dawn_start" json:"dawnStart"`
	MorningStart   float64 `toml:"morning_start" json:"morningStart"`
	NoonStart      float64 `toml:"noon_start" json:"noonStart"`
	AfternoonStart float64 `toml:"afternoon_start" json:"afternoonStart"`
	EveningStart   float64 `toml:"evening_start" json:"eveningStart"`
	DuskStart      float64 `toml:"dusk_start" json:"duskStart"`
	NightStart     float64 `toml:"night_start" json:"nightStart"`
}

// DropConfig tunes the splash droplets kicked up from the water surface.
// Velocities are pixels per second, gravity pixels per second squared.
type DropConfig struct {
	MinSize  float64 `toml:"min_size" json:"minSize"`
	MaxSize  float64 `toml:"max_size" json:"maxSize"`
	Impulse  float64 `toml:"impulse" json:"impulse"`
	Jitter   float64 `toml:"jitter" json:"jitter"`
	Gravity  float64 `toml:"gravity" json:"gravity"`
	MaxAge   float64 `toml:"max_age" json:"maxAge"`
	MaxCount int     `toml:"max_count" json:"maxCount"`
}

// RainConfig tunes the stochastic rain spawned while the sun is down.
type RainConfig struct {
	SpawnsPerSecond float64 `toml:"spawns_per_second" json:"spawnsPerSecond"`
	MinLength       float64 `toml:"min_length" json:"minLength"`
	MaxLength       float64 `toml:"max_length" json:"maxLength"`
	MinSpeed        float64 `toml:"min_speed" json:"minSpeed"`
	MaxSpeed        float64 `toml:"max_speed" json:"maxSpeed"`
	BurstCount      int     `toml:"burst_count" json:"burstCount"`
	MaxCount        int     `toml:"max_count" json:"maxCount"`
}

// RippleConfig tunes the expanding rings on the water surface.
type RippleConfig struct {
	AmbientPerSecond float64 `toml:"ambient_per_second" json:"ambientPerSecond"`
	ExpandSpeed      float64 `toml:"expand_speed" json:"expandSpeed"`
	MinRadius        float64 `toml:"min_radius" json:"minRadius"`
	MaxRadius        float64 `toml:"max_radius" json:"maxRadius"`
	MaxCount         int     `toml:"max_count" json:"maxCount"`
}

// FishConfig tunes the resident fish population.
type FishConfig struct {
	Count          int     `toml:"count" json:"count"`
	SwimSpeed      float64 `toml:"swim_speed" json:"swimSpeed"`
	SwayAmplitude  float64 `toml:"sway_amplitude" json:"swayAmplitude"`
	SwayFrequency  float64 `toml:"sway_frequency" json:"swayFrequency"`
	LeapsPerSecond float64 `toml:"leaps_per_second" json:"leapsPerSecond"`
	LeapImpulse    float64 `toml:"leap_impulse" json:"leapImpulse"`
	LeapGravity    float64 `toml:"leap_gravity" json:"leapGravity"`
}

// LotusConfig tunes the swaying lotus leaves.
type LotusConfig struct {
	Count         int     `toml:"count" json:"count"`
	SwayFrequency float64 `toml:"sway_frequency" json:"swayFrequency"`
}

// StarConfig tunes the night sky.
type StarConfig struct {
	Count          int     `toml:"count" json:"count"`
	TwinkleSpeed   float64 `toml:"twinkle_speed" json:"twinkleSpeed"`
	BaseBrightness float64 `toml:"base_brightness" json:"baseBrightness"`
	TwinkleRange   float64 `toml:"twinkle_range" json:"twinkleRange"`
}

// UptimeConfig controls the rare-scene unlock timer. When Persist is set the
// accumulated runtime survives restarts via the state file; otherwise every
// launch starts the count from zero.
type UptimeConfig struct {
	UnlockDays    float64 `toml:"unlock_days" json:"unlockDays"`
	MaxFrameDelta float64 `toml:"max_frame_delta" json:"maxFrameDelta"`
	Persist       bool    `toml:"persist" json:"persist"`
	StatePath     string  `toml:"state_path" json:"statePath"`
	SaveInterval  float64 `toml:"save_interval" json:"saveInterval"`
}

// LoggingConfig selects the zap encoder and level.
type LoggingConfig struct {
	Level  string `toml:"level" json:"level"`
	Format string `toml:"format" json:"format"`
}

// Default returns the tuning the widget ships with. The physical constants
// mirror the classic 320x320 build: a -420 px/s splash impulse and 900 px/s²
// gravity reproduce the original per-frame integration at 60 TPS.
func Default() Config {
	return Config{
		Seed: defaultSeed,
		Window: WindowConfig{
			Width:  320,
			Height: 320,
			TPS:    60,
		},
		Sky: SkyConfig{
			SunriseHour:    6,
			SunsetHour:     18,
			DawnStart:      5,
			MorningStart:   7,
			NoonStart:      11,
			AfternoonStart: 14,
			EveningStart:   17,
			DuskStart:      19,
			NightStart:     21,
		},
		Drops: DropConfig{
			MinSize:  4,
			MaxSize:  10,
			Impulse:  -420,
			Jitter:   60,
			Gravity:  900,
			MaxAge:   0.67,
			MaxCount: 64,
		},
		Rain: RainConfig{
			SpawnsPerSecond: 2.4,
			MinLength:       8,
			MaxLength:       18,
			MinSpeed:        240,
			MaxSpeed:        480,
			BurstCount:      20,
			MaxCount:        128,
		},
		Ripples: RippleConfig{
			AmbientPerSecond: 1,
			ExpandSpeed:      48,
			MinRadius:        15,
			MaxRadius:        30,
			MaxCount:         48,
		},
		Fish: FishConfig{
			Count:          2,
			SwimSpeed:      18,
			SwayAmplitude:  3,
			SwayFrequency:  3,
			LeapsPerSecond: 0.3,
			LeapImpulse:    -360,
			LeapGravity:    1080,
		},
		Lotus: LotusConfig{
			Count:         2,
			SwayFrequency: 1.2,
		},
		Stars: StarConfig{
			Count:          15,
			TwinkleSpeed:   4.8,
			BaseBrightness: 0.6,
			TwinkleRange:   0.2,
		},
		Uptime: UptimeConfig{
			UnlockDays:    3,
			MaxFrameDelta: 1,
			Persist:       false,
			StatePath:     "pond-uptime.json",
			SaveInterval:  60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads TOML overrides on top of the defaults. A missing file is fine:
// the widget runs on pure defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg.Normalized(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg.Normalized(), nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg.Normalized(), nil
}

// Normalized clamps values a hand-edited config could leave in a state the
// simulation cannot tolerate.
func (cfg Config) Normalized() Config {
	out := cfg

	out.Seed = strings.TrimSpace(out.Seed)
	if out.Seed == "" {
		out.Seed = defaultSeed
	}

	if out.Window.Width <= 0 {
		out.Window.Width = 320
	}
	if out.Window.Height <= 0 {
		out.Window.Height = 320
	}
	if out.Window.TPS <= 0 {
		out.Window.TPS = 60
	}

	if out.Sky.SunsetHour <= out.Sky.SunriseHour {
		out.Sky.SunriseHour = 6
		out.Sky.SunsetHour = 18
	}

	out.Drops.MaxCount = clampCount(out.Drops.MaxCount, 64)
	out.Rain.MaxCount = clampCount(out.Rain.MaxCount, 128)
	out.Ripples.MaxCount = clampCount(out.Ripples.MaxCount, 48)
	if out.Drops.MaxSize < out.Drops.MinSize {
		out.Drops.MaxSize = out.Drops.MinSize
	}
	if out.Drops.Gravity <= 0 {
		out.Drops.Gravity = 900
	}
	if out.Drops.MaxAge <= 0 {
		out.Drops.MaxAge = 0.67
	}
	if out.Rain.MaxSpeed < out.Rain.MinSpeed {
		out.Rain.MaxSpeed = out.Rain.MinSpeed
	}
	if out.Rain.SpawnsPerSecond < 0 {
		out.Rain.SpawnsPerSecond = 0
	}
	if out.Rain.BurstCount < 0 {
		out.Rain.BurstCount = 0
	}
	if out.Ripples.ExpandSpeed <= 0 {
		out.Ripples.ExpandSpeed = 48
	}
	if out.Ripples.MaxRadius < out.Ripples.MinRadius {
		out.Ripples.MaxRadius = out.Ripples.MinRadius
	}
	if out.Ripples.AmbientPerSecond < 0 {
		out.Ripples.AmbientPerSecond = 0
	}

	if out.Fish.Count < 0 {
		out.Fish.Count = 0
	}
	if out.Fish.LeapsPerSecond < 0 {
		out.Fish.LeapsPerSecond = 0
	}
	if out.Fish.LeapGravity <= 0 {
		out.Fish.LeapGravity = 1080
	}
	if out.Lotus.Count < 0 {
		out.Lotus.Count = 0
	}
	if out.Stars.Count < 0 {
		out.Stars.Count = 0
	}

	if out.Uptime.UnlockDays <= 0 {
		out.Uptime.UnlockDays = 3
	}
	if out.Uptime.MaxFrameDelta <= 0 {
		out.Uptime.MaxFrameDelta = 1
	}
	if out.Uptime.SaveInterval <= 0 {
		out.Uptime.SaveInterval = 60
	}
	if strings.TrimSpace(out.Uptime.StatePath) == "" {
		out.Uptime.StatePath = "pond-uptime.json"
	}

	if out.Logging.Level == "" {
		out.Logging.Level = "info"
	}
	if out.Logging.Format != "json" && out.Logging.Format != "console" {
		out.Logging.Format = "console"
	}

	return out
}

func clampCount(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
