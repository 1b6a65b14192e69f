package pond

import (
	"math"
	"math/rand"

	"pond-pet/widget/internal/config"
	"pond-pet/widget/internal/phase"
)

// World owns every entity pool. It is the only mutator of entity state; the
// renderer and tests only ever see value-copied snapshots.
type World struct {
	cfg    config.Config
	layout Layout

	drops   []WaterDrop
	rain    []RainDrop
	ripples []Ripple
	fish    []Fish
	leaves  []LotusLeaf
	stars   []Star

	dropRNG   *rand.Rand
	rainRNG   *rand.Rand
	rippleRNG *rand.Rand
	fishRNG   *rand.Rand
}

// NewWorld seeds the ambient populations (fish, lotus leaves, stars) and
// prepares empty transient pools. All randomness is derived from the config
// seed, one stream per subsystem.
func NewWorld(cfg config.Config) *World {
	w := &World{
		cfg:       cfg,
		layout:    NewLayout(cfg.Window.Width, cfg.Window.Height),
		drops:     make([]WaterDrop, 0, cfg.Drops.MaxCount),
		rain:      make([]RainDrop, 0, cfg.Rain.MaxCount),
		ripples:   make([]Ripple, 0, cfg.Ripples.MaxCount),
		dropRNG:   NewDeterministicRNG(cfg.Seed, "pond.drops"),
		rainRNG:   NewDeterministicRNG(cfg.Seed, "pond.rain"),
		rippleRNG: NewDeterministicRNG(cfg.Seed, "pond.ripples"),
		fishRNG:   NewDeterministicRNG(cfg.Seed, "pond.fish"),
	}
	w.seedFish()
	w.seedLeaves()
	w.seedStars()
	return w
}

// Layout exposes the derived pond geometry.
func (w *World) Layout() Layout { return w.layout }

func (w *World) seedFish() {
	seedRNG := NewDeterministicRNG(w.cfg.Seed, "pond.fish.seed")
	w.fish = make([]Fish, 0, w.cfg.Fish.Count)
	for i := 0; i < w.cfg.Fish.Count; i++ {
		dir := 1.0
		if seedRNG.Float64() < 0.5 {
			dir = -1.0
		}
		depth := w.layout.FishDepthY()
		w.fish = append(w.fish, Fish{
			Pos:       Vec2{X: randRange(seedRNG, w.layout.PondLeft()+20, w.layout.PondRight()-20), Y: depth},
			BaseY:     depth,
			Dir:       dir,
			Size:      randRange(seedRNG, 10, 14),
			SwimPhase: seedRNG.Float64() * 2 * math.Pi,
		})
	}
}

func (w *World) seedLeaves() {
	seedRNG := NewDeterministicRNG(w.cfg.Seed, "pond.lotus.seed")
	w.leaves = make([]LotusLeaf, 0, w.cfg.Lotus.Count)
	for i := 0; i < w.cfg.Lotus.Count; i++ {
		// Alternate leaves between the two banks, shrinking slightly
		// toward the right so the pair reads like the classic layout.
		var x, y, size float64
		if i%2 == 0 {
			x = 70 + float64(i)*12
			y = w.layout.Height - 55
			size = 25
		} else {
			x = w.layout.Width - 90 - float64(i)*12
			y = w.layout.Height - 50
			size = 20
		}
		w.leaves = append(w.leaves, LotusLeaf{
			Pos:       Vec2{X: x, Y: y},
			Size:      size,
			SwayPhase: seedRNG.Float64() * 2 * math.Pi,
		})
	}
}

func (w *World) seedStars() {
	seedRNG := NewDeterministicRNG(w.cfg.Seed, "pond.stars.seed")
	w.stars = make([]Star, 0, w.cfg.Stars.Count)
	for i := 0; i < w.cfg.Stars.Count; i++ {
		w.stars = append(w.stars, Star{
			Pos: Vec2{
				X: randRange(seedRNG, 10, w.layout.Width-10),
				Y: randRange(seedRNG, 10, w.layout.SkyBottom()),
			},
			Size:         1 + seedRNG.Float64()*2,
			TwinklePhase: seedRNG.Float64() * 2 * math.Pi,
		})
	}
}

// SpawnDrop launches a splash droplet at a random spot over the water.
func (w *World) SpawnDrop() {
	w.SpawnDropAt(randRange(w.dropRNG, w.layout.SplashBandLeft(), w.layout.SplashBandRight()))
}

// SpawnDropAt launches a splash droplet at the given x. The vertical
// impulse is the configured splash impulse plus a small jitter.
func (w *World) SpawnDropAt(x float64) {
	d := w.cfg.Drops
	drop := WaterDrop{
		Pos:    Vec2{X: x, Y: w.layout.SplashOriginY()},
		Vel:    Vec2{Y: d.Impulse + (w.dropRNG.Float64()*2-1)*d.Jitter},
		Size:   randRange(w.dropRNG, d.MinSize, d.MaxSize),
		MaxAge: d.MaxAge,
		Alive:  true,
	}
	w.drops = appendCapped(w.drops, d.MaxCount, drop)
}

// SpawnRain drops a rain streak from above the widget.
func (w *World) SpawnRain() {
	r := w.cfg.Rain
	length := randRange(w.rainRNG, r.MinLength, r.MaxLength)
	drop := RainDrop{
		Pos:       Vec2{X: randRange(w.rainRNG, 0, w.layout.Width), Y: -length},
		Length:    length,
		FallSpeed: randRange(w.rainRNG, r.MinSpeed, r.MaxSpeed),
		Alive:     true,
	}
	w.rain = appendCapped(w.rain, r.MaxCount, drop)
}

// SpawnRipple starts an expanding ring centered on the given point.
func (w *World) SpawnRipple(x, y float64) {
	r := w.cfg.Ripples
	ripple := Ripple{
		Center:    Vec2{X: x, Y: y},
		Radius:    2,
		MaxRadius: randRange(w.rippleRNG, r.MinRadius, r.MaxRadius),
		Opacity:   1,
		Alive:     true,
	}
	w.ripples = appendCapped(w.ripples, r.MaxCount, ripple)
}

// SpawnAmbientRipple places a ripple somewhere on the open water, the idle
// shimmer the pond shows even without rain.
func (w *World) SpawnAmbientRipple() {
	w.SpawnRipple(
		randRange(w.rippleRNG, w.layout.PondLeft(), w.layout.PondRight()),
		w.layout.WaterSurfaceY(),
	)
}

// RainRNG exposes the rain stream for the environmental spawn roll, keeping
// rain timing on a single deterministic sequence.
func (w *World) RainRNG() *rand.Rand { return w.rainRNG }

// RippleRNG exposes the ripple stream for the ambient shimmer roll.
func (w *World) RippleRNG() *rand.Rand { return w.rippleRNG }

// Tick advances every live entity by dt seconds, then compacts the
// transient pools. Rain that struck the water this frame converts into
// ripples after compaction, still subject to the ripple cap. No entity
// reads another's state during advancement.
func (w *World) Tick(dt float64, current phase.Phase) {
	if dt < 0 {
		dt = 0
	}

	for i := range w.drops {
		w.drops[i].Advance(dt, w.cfg.Drops.Gravity, w.layout.DropDrownY())
	}
	w.drops = compact(w.drops, func(d *WaterDrop) bool { return d.Alive })

	splashes := make([]float64, 0, 4)
	waterY := w.layout.SplashOriginY()
	for i := range w.rain {
		if w.rain[i].Advance(dt, waterY) {
			splashes = append(splashes, w.rain[i].Pos.X)
		}
	}
	w.rain = compact(w.rain, func(r *RainDrop) bool { return r.Alive })

	for i := range w.ripples {
		w.ripples[i].Advance(dt, w.cfg.Ripples.ExpandSpeed)
	}
	w.ripples = compact(w.ripples, func(r *Ripple) bool { return r.Alive })

	for _, x := range splashes {
		w.SpawnRipple(x, w.layout.WaterSurfaceY())
	}

	tune := FishTuning{
		SwimSpeed:     w.cfg.Fish.SwimSpeed,
		SwayAmplitude: w.cfg.Fish.SwayAmplitude,
		SwayFrequency: w.cfg.Fish.SwayFrequency,
		LeapGravity:   w.cfg.Fish.LeapGravity,
		MinX:          w.layout.PondLeft(),
		MaxX:          w.layout.PondRight(),
	}
	leapChance := w.cfg.Fish.LeapsPerSecond * dt
	for i := range w.fish {
		if !w.fish[i].Leaping && dt > 0 && w.fishRNG.Float64() < leapChance {
			w.fish[i].StartLeap(w.cfg.Fish.LeapImpulse)
		}
		w.fish[i].Advance(dt, tune)
	}

	for i := range w.leaves {
		w.leaves[i].Advance(dt, w.cfg.Lotus.SwayFrequency)
	}

	starsVisible := phase.StarBrightness(current) > 0
	for i := range w.stars {
		w.stars[i].Advance(dt, w.cfg.Stars.TwinkleSpeed, starsVisible)
	}
}

// Counts reports the live population of each transient pool.
func (w *World) Counts() (drops, rain, ripples int) {
	return len(w.drops), len(w.rain), len(w.ripples)
}

// Snapshot copies every pool into a read-only view for the renderer.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Drops:   append([]WaterDrop(nil), w.drops...),
		Rain:    append([]RainDrop(nil), w.rain...),
		Ripples: append([]Ripple(nil), w.ripples...),
		Fish:    append([]Fish(nil), w.fish...),
		Leaves:  append([]LotusLeaf(nil), w.leaves...),
		Stars:   append([]Star(nil), w.stars...),
	}
}
