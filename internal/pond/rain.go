package pond

// RainDrop is a streak falling from the top of the widget. It dies the
// frame it crosses the water line, which is also the only frame it reports
// a splash.
type RainDrop struct {
	Pos       Vec2    `json:"pos"`
	Length    float64 `json:"length"`
	FallSpeed float64 `json:"fallSpeed"`
	Alive     bool    `json:"alive"`
}

// Advance moves the drop down and reports whether it struck the water this
// frame. The strike fires at most once because the drop dies with it.
func (r *RainDrop) Advance(dt, waterY float64) (splashed bool) {
	if !r.Alive {
		return false
	}
	r.Pos.Y += r.FallSpeed * dt
	if r.Pos.Y >= waterY {
		r.Pos.Y = waterY
		r.Alive = false
		return true
	}
	return false
}
