// Package pond owns the animated entities of the water pond and the pools
// that bound their populations.
package pond

// Vec2 is a 2D point or velocity in widget pixels. Y grows downward.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout derives the fixed pond geometry from the widget size. The offsets
// reproduce the classic 320x320 arrangement: the pond hugs the bottom edge
// and the sky takes the rest.
type Layout struct {
	Width  float64
	Height float64
}

// NewLayout builds the geometry for a widget of the given size.
func NewLayout(width, height int) Layout {
	return Layout{Width: float64(width), Height: float64(height)}
}

// WaterSurfaceY is where ripples sit and leaping fish land.
func (l Layout) WaterSurfaceY() float64 { return l.Height - 38 }

// SplashOriginY is where splash drops launch from and rain strikes.
func (l Layout) SplashOriginY() float64 { return l.Height - 45 }

// DropDrownY is the line below which a falling drop rejoins the water.
func (l Layout) DropDrownY() float64 { return l.Height - 30 }

// FishDepthY is the resting swim depth.
func (l Layout) FishDepthY() float64 { return l.Height - 42 }

// PondLeft and PondRight bound the open water fish patrol.
func (l Layout) PondLeft() float64  { return 60 }
func (l Layout) PondRight() float64 { return l.Width - 60 }

// SplashBandLeft and SplashBandRight bound random splash placement, inset a
// little further than the fish bounds so drops stay over open water.
func (l Layout) SplashBandLeft() float64  { return 70 }
func (l Layout) SplashBandRight() float64 { return l.Width - 70 }

// SkyBottom bounds star placement to the upper half of the widget.
func (l Layout) SkyBottom() float64 { return l.Height / 2 }

// OnWater reports whether a click at (x, y) lands on the water band, the
// zone where a poke raises a ripple.
func (l Layout) OnWater(x, y float64) bool {
	return y > l.Height-60 && y < l.Height-20 && x >= 0 && x <= l.Width
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
