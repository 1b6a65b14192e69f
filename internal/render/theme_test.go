package render

import (
	"testing"

	"pond-pet/widget/internal/phase"
)

func TestSkyColorPerPhase(t *testing.T) {
	th := DefaultTheme()
	cases := []struct {
		p    phase.Phase
		want [4]uint8
	}{
		{phase.Dawn, [4]uint8{255, 200, 150, 100}},
		{phase.Morning, [4]uint8{180, 220, 255, 90}},
		{phase.Noon, [4]uint8{135, 206, 250, 70}},
		{phase.Afternoon, [4]uint8{180, 220, 255, 90}},
		{phase.Evening, [4]uint8{255, 180, 140, 100}},
		{phase.Dusk, [4]uint8{255, 140, 100, 110}},
		{phase.Night, [4]uint8{30, 50, 80, 120}},
	}
	for _, tc := range cases {
		c := th.SkyColor(tc.p)
		got := [4]uint8{c.R, c.G, c.B, c.A}
		if got != tc.want {
			t.Fatalf("%s: sky %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestSunColorWarmsTowardHorizon(t *testing.T) {
	th := DefaultTheme()
	if th.SunColor(phase.Morning) != th.SunMorning {
		t.Fatalf("morning sun color mismatch")
	}
	if th.SunColor(phase.Noon) != th.SunNoon {
		t.Fatalf("noon sun color mismatch")
	}
	if th.SunColor(phase.Evening) != th.SunEvening {
		t.Fatalf("evening sun color mismatch")
	}
	if th.SunColor(phase.Dusk) != th.SunEvening {
		t.Fatalf("dusk should share the evening sun color")
	}
}
