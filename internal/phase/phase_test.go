package phase

import (
	"testing"
	"time"

	"pond-pet/widget/internal/config"
)

func testResolver() Resolver {
	return NewResolver(config.Default().Sky)
}

func at(hour, min int) time.Time {
	return time.Date(2024, time.June, 12, hour, min, 0, 0, time.Local)
}

func TestBuckets(t *testing.T) {
	r := testResolver()
	cases := []struct {
		hour, min int
		want      Phase
	}{
		{5, 0, Dawn},
		{6, 59, Dawn},
		{7, 0, Morning},
		{10, 30, Morning},
		{11, 0, Noon},
		{13, 59, Noon},
		{14, 0, Afternoon},
		{16, 45, Afternoon},
		{17, 0, Evening},
		{18, 59, Evening},
		{19, 0, Dusk},
		{20, 59, Dusk},
		{21, 0, Night},
		{23, 59, Night},
		{0, 0, Night},
		{4, 59, Night},
	}
	for _, tc := range cases {
		got := r.Resolve(at(tc.hour, tc.min))
		if got.Phase != tc.want {
			t.Fatalf("%02d:%02d: expected %s, got %s", tc.hour, tc.min, tc.want, got.Phase)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	r := testResolver()
	ts := at(9, 17)
	first := r.Resolve(ts)
	for i := 0; i < 5; i++ {
		if again := r.Resolve(ts); again != first {
			t.Fatalf("resolver not idempotent: %+v vs %+v", first, again)
		}
	}
}

func TestSunElevationArc(t *testing.T) {
	r := testResolver()

	noon := r.Resolve(at(12, 0))
	if noon.SunElevation < 0.99 {
		t.Fatalf("expected peak elevation near noon, got %v", noon.SunElevation)
	}

	morning := r.Resolve(at(8, 0))
	evening := r.Resolve(at(16, 0))
	if morning.SunElevation <= 0 || evening.SunElevation <= 0 {
		t.Fatalf("expected daylight elevation positive, got %v / %v", morning.SunElevation, evening.SunElevation)
	}
	if morning.SunElevation >= noon.SunElevation {
		t.Fatalf("expected morning below noon, got %v >= %v", morning.SunElevation, noon.SunElevation)
	}

	midnight := r.Resolve(at(0, 0))
	if midnight.SunElevation >= 0 {
		t.Fatalf("expected sun below horizon at midnight, got %v", midnight.SunElevation)
	}
}

func TestMoonOnlyAtNight(t *testing.T) {
	r := testResolver()
	if r.Resolve(at(22, 0)).MoonVisible != true {
		t.Fatalf("expected moon at 22:00")
	}
	for _, h := range []int{6, 9, 12, 15, 18, 20} {
		if r.Resolve(at(h, 0)).MoonVisible {
			t.Fatalf("unexpected moon at %02d:00", h)
		}
	}
}

func TestStarBrightness(t *testing.T) {
	cases := []struct {
		p    Phase
		want float64
	}{
		{Night, 1},
		{Dusk, 0.5},
		{Dawn, 0.5},
		{Morning, 0},
		{Noon, 0},
		{Afternoon, 0},
		{Evening, 0},
	}
	for _, tc := range cases {
		if got := StarBrightness(tc.p); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.p, tc.want, got)
		}
	}
}

func TestDaylight(t *testing.T) {
	for _, p := range []Phase{Morning, Noon, Afternoon} {
		if !Daylight(p) {
			t.Fatalf("expected %s to be daylight", p)
		}
	}
	for _, p := range []Phase{Dawn, Evening, Dusk, Night} {
		if Daylight(p) {
			t.Fatalf("expected %s to not be daylight", p)
		}
	}
}
