package pond

// Snapshot is a value copy of every pool, safe to hand to the renderer.
// Mutating a snapshot never touches the live world.
type Snapshot struct {
	Drops   []WaterDrop `json:"drops"`
	Rain    []RainDrop  `json:"rain"`
	Ripples []Ripple    `json:"ripples"`
	Fish    []Fish      `json:"fish"`
	Leaves  []LotusLeaf `json:"leaves"`
	Stars   []Star      `json:"stars"`
}
