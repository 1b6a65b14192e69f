package sim

import "go.uber.org/zap"

// Deps carries the shared infrastructure dependencies the engine needs.
// Zero values fall back to a nop logger and the system clock, so tests can
// construct an engine with only the pieces they care about.
type Deps struct {
	Logger *zap.Logger
	Clock  Clock
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = SystemClock{}
	}
	return d
}
