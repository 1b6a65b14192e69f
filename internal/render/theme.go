package render

import (
	"image/color"

	"pond-pet/widget/internal/phase"
)

// Theme holds the widget palette. Alpha is straight (non-premultiplied);
// the draw helpers convert on the way to the GPU.
type Theme struct {
	WaterMain      color.NRGBA
	WaterShadow    color.NRGBA
	WaterHighlight color.NRGBA
	Drop           color.NRGBA
	Rain           color.NRGBA
	Ripple         color.NRGBA

	SkyDawn    color.NRGBA
	SkyMorning color.NRGBA
	SkyNoon    color.NRGBA
	SkyEvening color.NRGBA
	SkyDusk    color.NRGBA
	SkyNight   color.NRGBA

	SunMorning color.NRGBA
	SunNoon    color.NRGBA
	SunEvening color.NRGBA
	Moon       color.NRGBA
	MoonShadow color.NRGBA
	Star       color.NRGBA

	MountainFront color.NRGBA
	MountainBack  color.NRGBA
	MountainGlow  color.NRGBA

	FishBody color.NRGBA
	FishTail color.NRGBA
	FishEye  color.NRGBA

	LotusLeaf color.NRGBA
	LotusVein color.NRGBA
}

// DefaultTheme is the palette the widget ships with.
func DefaultTheme() Theme {
	return Theme{
		WaterMain:      color.NRGBA{70, 170, 255, 200},
		WaterShadow:    color.NRGBA{50, 140, 220, 160},
		WaterHighlight: color.NRGBA{180, 230, 255, 120},
		Drop:           color.NRGBA{150, 220, 255, 230},
		Rain:           color.NRGBA{200, 235, 255, 180},
		Ripple:         color.NRGBA{200, 240, 255, 150},

		SkyDawn:    color.NRGBA{255, 200, 150, 100},
		SkyMorning: color.NRGBA{180, 220, 255, 90},
		SkyNoon:    color.NRGBA{135, 206, 250, 70},
		SkyEvening: color.NRGBA{255, 180, 140, 100},
		SkyDusk:    color.NRGBA{255, 140, 100, 110},
		SkyNight:   color.NRGBA{30, 50, 80, 120},

		SunMorning: color.NRGBA{255, 240, 130, 255},
		SunNoon:    color.NRGBA{255, 255, 200, 255},
		SunEvening: color.NRGBA{255, 160, 90, 255},
		Moon:       color.NRGBA{240, 240, 255, 200},
		MoonShadow: color.NRGBA{200, 200, 230, 150},
		Star:       color.NRGBA{255, 255, 255, 180},

		MountainFront: color.NRGBA{220, 200, 130, 220},
		MountainBack:  color.NRGBA{180, 160, 100, 200},
		MountainGlow:  color.NRGBA{255, 240, 180, 150},

		FishBody: color.NRGBA{255, 180, 100, 220},
		FishTail: color.NRGBA{255, 150, 80, 200},
		FishEye:  color.NRGBA{0, 0, 0, 200},

		LotusLeaf: color.NRGBA{80, 180, 100, 180},
		LotusVein: color.NRGBA{60, 150, 80, 150},
	}
}

// SkyColor picks the wash tint for a phase. Afternoon shares the morning
// tint so the sky only warms up once the evening starts.
func (t Theme) SkyColor(p phase.Phase) color.NRGBA {
	switch p {
	case phase.Dawn:
		return t.SkyDawn
	case phase.Morning, phase.Afternoon:
		return t.SkyMorning
	case phase.Noon:
		return t.SkyNoon
	case phase.Evening:
		return t.SkyEvening
	case phase.Dusk:
		return t.SkyDusk
	case phase.Night:
		return t.SkyNight
	}
	return t.SkyNoon
}

// SunColor warms the sun disc toward the horizon.
func (t Theme) SunColor(p phase.Phase) color.NRGBA {
	switch p {
	case phase.Dawn, phase.Morning:
		return t.SunMorning
	case phase.Noon:
		return t.SunNoon
	}
	return t.SunEvening
}
