package sim

import (
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"pond-pet/widget/internal/config"
	"pond-pet/widget/internal/phase"
	"pond-pet/widget/internal/pond"
	"pond-pet/widget/internal/uptime"
)

// Engine is the per-frame orchestrator. Each Advance it samples the clock,
// resolves the day phase, accumulates uptime, drains staged input commands,
// rolls environmental spawns, ticks the entity pools, and publishes a fresh
// snapshot. It is driven by a single goroutine (the frame pump); only the
// command buffer tolerates concurrent producers.
type Engine struct {
	cfg      config.Config
	log      *zap.Logger
	clock    Clock
	buffer   *CommandBuffer
	resolver phase.Resolver
	uptime   *uptime.Tracker
	world    *pond.World

	burstRNG *rand.Rand

	tick     uint64
	lastNow  time.Time
	started  bool
	snapshot Snapshot
}

// commandBufferCapacity bounds the per-tick input backlog. Sixty-four is
// far beyond what a human can queue between two frames.
const commandBufferCapacity = 64

// NewEngine builds an engine from a normalized config.
func NewEngine(cfg config.Config, deps Deps) *Engine {
	deps = deps.withDefaults()
	e := &Engine{
		cfg:      cfg,
		log:      deps.Logger,
		clock:    deps.Clock,
		buffer:   NewCommandBuffer(commandBufferCapacity),
		resolver: phase.NewResolver(cfg.Sky),
		uptime:   uptime.NewTracker(cfg.Uptime.UnlockDays, cfg.Uptime.MaxFrameDelta),
		world:    pond.NewWorld(cfg),
		burstRNG: pond.NewDeterministicRNG(cfg.Seed, "sim.burst"),
	}
	e.log.Info("simulation engine ready",
		zap.String("seed", cfg.Seed),
		zap.Int("tps", cfg.Window.TPS),
	)
	return e
}

// Enqueue stages an input command for the next tick. Returns false when the
// buffer is saturated and the command was dropped.
func (e *Engine) Enqueue(cmd Command) bool {
	if e == nil {
		return false
	}
	return e.buffer.Push(cmd)
}

// RestoreUptime seeds the uptime counter from persisted state.
func (e *Engine) RestoreUptime(seconds float64) {
	e.uptime.Restore(seconds)
}

// UptimeState returns the current uptime view without advancing it.
func (e *Engine) UptimeState() uptime.State {
	return e.uptime.State()
}

// Snapshot returns the most recently published snapshot.
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot
}

// Advance runs one tick at the clock's current instant and publishes the
// resulting snapshot.
func (e *Engine) Advance() Snapshot {
	now := e.clock.Now()
	dt := 0.0
	if e.started {
		dt = now.Sub(e.lastNow).Seconds()
	}
	e.started = true
	e.lastNow = now
	return e.Step(now, dt)
}

// Step advances the simulation by dt seconds at instant now. Hosts that
// measure their own frame time call this directly. Out-of-range deltas are
// neutralized rather than propagated: negative or non-finite deltas become
// a no-op tick, spikes clamp to the configured maximum.
func (e *Engine) Step(now time.Time, dt float64) Snapshot {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		dt = 0
	}
	if max := e.cfg.Uptime.MaxFrameDelta; dt > max {
		e.log.Warn("clamping frame delta spike", zap.Float64("delta", dt), zap.Float64("max", max))
		dt = max
	}

	e.tick++

	ph := e.resolver.Resolve(now)
	up := e.uptime.Advance(dt)

	e.applyCommands(e.buffer.Drain())
	e.rollEnvironment(ph, dt)
	e.world.Tick(dt, ph.Phase)

	e.snapshot = Snapshot{
		Tick:   e.tick,
		Time:   now,
		Delta:  dt,
		Phase:  ph,
		Uptime: up,
		Pond:   e.world.Snapshot(),
	}
	return e.snapshot
}

// applyCommands turns staged input intents into spawns. Running before the
// pool tick guarantees the effects appear in this same frame's snapshot.
func (e *Engine) applyCommands(commands []Command) {
	for _, cmd := range commands {
		switch cmd.Type {
		case CommandSplash:
			e.world.SpawnDrop()
		case CommandBurst:
			count := 3 + e.burstRNG.Intn(4)
			for i := 0; i < count; i++ {
				e.world.SpawnDrop()
			}
		case CommandRainBurst:
			for i := 0; i < e.cfg.Rain.BurstCount; i++ {
				e.world.SpawnRain()
			}
		case CommandPoke:
			e.world.SpawnRipple(cmd.Pos.X, cmd.Pos.Y)
			e.world.SpawnDropAt(cmd.Pos.X)
		}
	}
}

// rollEnvironment handles the spawns the pond produces on its own: rain
// while the sun is down, and the occasional idle shimmer ripple. The rolls
// use fresh dt so environmental spawns never see time already consumed by
// entity advancement.
func (e *Engine) rollEnvironment(ph phase.State, dt float64) {
	if dt <= 0 {
		return
	}
	if !phase.Daylight(ph.Phase) {
		if e.world.RainRNG().Float64() < e.cfg.Rain.SpawnsPerSecond*dt {
			e.world.SpawnRain()
		}
	}
	if e.world.RippleRNG().Float64() < e.cfg.Ripples.AmbientPerSecond*dt {
		e.world.SpawnAmbientRipple()
	}
}
