package pond

// Ripple is an expanding ring on the water surface. Radius only grows and
// opacity only fades; the ring dies when it is fully transparent. Ripples
// never interact with each other.
type Ripple struct {
	Center    Vec2    `json:"center"`
	Radius    float64 `json:"radius"`
	MaxRadius float64 `json:"maxRadius"`
	Opacity   float64 `json:"opacity"`
	Alive     bool    `json:"alive"`
}

// Advance grows the ring and fades it in proportion to how far it has
// expanded toward its maximum radius.
func (r *Ripple) Advance(dt, expandSpeed float64) {
	if !r.Alive {
		return
	}
	if expandSpeed < 0 {
		expandSpeed = 0
	}
	r.Radius += expandSpeed * dt
	if r.MaxRadius <= 0 {
		r.Opacity = 0
	} else {
		r.Opacity = Clamp(1-r.Radius/r.MaxRadius, 0, 1)
	}
	if r.Opacity <= 0 {
		r.Opacity = 0
		r.Alive = false
	}
}
