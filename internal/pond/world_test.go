package pond

import (
	"testing"

	"pond-pet/widget/internal/config"
	"pond-pet/widget/internal/phase"
)

func testWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.Default().Normalized())
}

func TestAmbientPopulationsSeeded(t *testing.T) {
	w := testWorld(t)
	snap := w.Snapshot()
	if len(snap.Fish) != 2 {
		t.Fatalf("expected 2 fish, got %d", len(snap.Fish))
	}
	if len(snap.Leaves) != 2 {
		t.Fatalf("expected 2 lotus leaves, got %d", len(snap.Leaves))
	}
	if len(snap.Stars) != 15 {
		t.Fatalf("expected 15 stars, got %d", len(snap.Stars))
	}
}

func TestSeedingIsDeterministic(t *testing.T) {
	a := testWorld(t).Snapshot()
	b := testWorld(t).Snapshot()
	for i := range a.Fish {
		if a.Fish[i] != b.Fish[i] {
			t.Fatalf("fish %d differ across identically seeded worlds", i)
		}
	}
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d differ across identically seeded worlds", i)
		}
	}
}

func TestDropCapEvictsOldest(t *testing.T) {
	cfg := config.Default().Normalized()
	cfg.Drops.MaxCount = 4
	w := NewWorld(cfg)

	for i := 0; i < 10; i++ {
		w.SpawnDropAt(float64(100 + i))
	}
	snap := w.Snapshot()
	if len(snap.Drops) != 4 {
		t.Fatalf("expected pool at cap 4, got %d", len(snap.Drops))
	}
	// Oldest spawns were evicted; the newest four remain in order.
	for i, d := range snap.Drops {
		want := float64(100 + 6 + i)
		if d.Pos.X != want {
			t.Fatalf("slot %d: expected x %v, got %v", i, want, d.Pos.X)
		}
	}
}

func TestPoolsNeverExceedCaps(t *testing.T) {
	cfg := config.Default().Normalized()
	cfg.Drops.MaxCount = 8
	cfg.Rain.MaxCount = 8
	cfg.Ripples.MaxCount = 8
	w := NewWorld(cfg)

	for i := 0; i < 100; i++ {
		w.SpawnDrop()
		w.SpawnRain()
		w.SpawnAmbientRipple()
	}
	drops, rain, ripples := w.Counts()
	if drops > 8 || rain > 8 || ripples > 8 {
		t.Fatalf("cap breached: drops=%d rain=%d ripples=%d", drops, rain, ripples)
	}
}

func TestNoEntityResurrects(t *testing.T) {
	w := testWorld(t)
	w.SpawnDropAt(150)
	w.SpawnRain()
	w.SpawnRipple(150, w.Layout().WaterSurfaceY())

	const dt = 1.0 / 60.0
	for i := 0; i < 60*30; i++ {
		w.Tick(dt, phase.Noon)
	}
	drops, rain, ripples := w.Counts()
	if drops != 0 || rain != 0 || ripples != 0 {
		t.Fatalf("transient entities survived 30s: drops=%d rain=%d ripples=%d", drops, rain, ripples)
	}
	// Ambient populations are untouched by compaction.
	snap := w.Snapshot()
	if len(snap.Fish) != 2 || len(snap.Leaves) != 2 || len(snap.Stars) != 15 {
		t.Fatalf("ambient pool disturbed: %d fish, %d leaves, %d stars",
			len(snap.Fish), len(snap.Leaves), len(snap.Stars))
	}
}

func TestRainConvertsToRipple(t *testing.T) {
	w := testWorld(t)
	w.SpawnRain()

	const dt = 1.0 / 60.0
	converted := false
	for i := 0; i < 60*5; i++ {
		_, rainBefore, ripplesBefore := w.Counts()
		w.Tick(dt, phase.Night)
		_, rainAfter, ripplesAfter := w.Counts()
		if rainAfter < rainBefore && ripplesAfter > ripplesBefore {
			converted = true
			break
		}
	}
	if !converted {
		t.Fatalf("rain drop never converted into a ripple")
	}
}

func TestStarsGatedByPhase(t *testing.T) {
	w := testWorld(t)
	const dt = 1.0 / 60.0

	w.Tick(dt, phase.Night)
	for _, s := range w.Snapshot().Stars {
		if !s.Visible {
			t.Fatalf("expected stars visible at night")
		}
	}

	w.Tick(dt, phase.Noon)
	for _, s := range w.Snapshot().Stars {
		if s.Visible {
			t.Fatalf("expected stars hidden at noon")
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	w := testWorld(t)
	w.SpawnDropAt(111)
	snap := w.Snapshot()
	snap.Drops[0].Pos.X = -1
	snap.Fish[0].Pos.X = -1

	again := w.Snapshot()
	if again.Drops[0].Pos.X == -1 || again.Fish[0].Pos.X == -1 {
		t.Fatalf("snapshot aliases live pool storage")
	}
}

func TestNegativeDeltaIsNoOp(t *testing.T) {
	w := testWorld(t)
	w.SpawnDropAt(120)
	before := w.Snapshot()
	w.Tick(-0.5, phase.Noon)
	after := w.Snapshot()
	if before.Drops[0] != after.Drops[0] {
		t.Fatalf("negative delta moved a drop: %+v vs %+v", before.Drops[0], after.Drops[0])
	}
}
