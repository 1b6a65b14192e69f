package sim

import (
	"time"

	"pond-pet/widget/internal/phase"
	"pond-pet/widget/internal/pond"
	"pond-pet/widget/internal/uptime"
)

// Snapshot is the immutable per-tick view handed to the renderer. Entity
// slices are copies; mutating a snapshot never reaches back into the engine.
type Snapshot struct {
	Tick   uint64
	Time   time.Time
	Delta  float64
	Phase  phase.State
	Uptime uptime.State
	Pond   pond.Snapshot
}
