package pond

// WaterDrop is a splash droplet thrown above the surface by a key press or
// a poke. It follows plain projectile motion until it falls back into the
// water or burns through its lifetime.
type WaterDrop struct {
	Pos    Vec2    `json:"pos"`
	Vel    Vec2    `json:"vel"`
	Size   float64 `json:"size"`
	Age    float64 `json:"age"`
	MaxAge float64 `json:"maxAge"`
	Alive  bool    `json:"alive"`
}

// Advance integrates one frame of constant-gravity motion. drownY is the
// line below which the drop rejoins the pond.
func (d *WaterDrop) Advance(dt, gravity, drownY float64) {
	if !d.Alive {
		return
	}
	d.Vel.Y += gravity * dt
	d.Pos.X += d.Vel.X * dt
	d.Pos.Y += d.Vel.Y * dt
	d.Age += dt
	if d.Age > d.MaxAge || d.Pos.Y > drownY {
		d.Alive = false
	}
}

// FadeRatio reports the remaining lifetime fraction, used for alpha.
func (d WaterDrop) FadeRatio() float64 {
	if d.MaxAge <= 0 {
		return 0
	}
	return Clamp(1-d.Age/d.MaxAge, 0, 1)
}
