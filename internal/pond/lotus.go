package pond

import "math"

// LotusLeaf floats in place. Only its sway angle animates; each leaf gets
// its own phase offset so the pair never rocks in sync.
type LotusLeaf struct {
	Pos       Vec2    `json:"pos"`
	Size      float64 `json:"size"`
	SwayPhase float64 `json:"swayPhase"`
}

// Advance rocks the leaf.
func (l *LotusLeaf) Advance(dt, frequency float64) {
	l.SwayPhase += frequency * dt
}

// SwayOffset is the horizontal pixel offset the renderer applies.
func (l LotusLeaf) SwayOffset() float64 {
	return math.Sin(l.SwayPhase) * 2
}
