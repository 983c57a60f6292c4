package game

import (
	"math"
	"testing"

	"dustward/internal/config"
)

func newTestDay() DayCycle {
	return newDayCycle(config.DefaultWorldConfig().Day)
}

func TestDayClockWraps(t *testing.T) {
	d := newTestDay()

	d.Update(d.cfg.Length - 1)
	if d.Phase() >= 1 {
		t.Fatalf("Phase should stay below 1, got %.3f", d.Phase())
	}

	d.Update(2)
	if d.Clock != 1 {
		t.Errorf("Clock should wrap to 1, got %.3f", d.Clock)
	}
	if d.Phase() < 0 || d.Phase() >= 1 {
		t.Errorf("Phase %.3f outside [0,1)", d.Phase())
	}
}

func TestNightBand(t *testing.T) {
	d := newTestDay()

	cases := []struct {
		phase float64
		night bool
	}{
		{0.0, true}, // Below NightUntil, still night
		{0.03, true},
		{0.05, false}, // Boundary: strictly below NightUntil is night
		{0.5, false},
		{0.75, false}, // Boundary: strictly above NightAfter is night
		{0.76, true},
		{0.9, true},
		{0.99, true},
	}
	for _, c := range cases {
		d.Clock = c.phase * d.cfg.Length
		if d.IsNight() != c.night {
			t.Errorf("Phase %.2f: IsNight() = %t, want %t", c.phase, d.IsNight(), c.night)
		}
	}
}

func TestShadowGoneAtNight(t *testing.T) {
	d := newTestDay()

	d.Clock = 0.9 * d.cfg.Length
	if off := d.ShadowOffset(); !off.IsZero() {
		t.Errorf("Night shadow should be zero, got (%.1f, %.1f)", off.X, off.Y)
	}

	d.Clock = 0.4 * d.cfg.Length
	if off := d.ShadowOffset(); off.IsZero() {
		t.Error("Daytime shadow should be nonzero")
	}
}

func TestAmbientHitsKeyframes(t *testing.T) {
	d := newTestDay()

	for _, key := range dayPalette {
		d.Clock = key.phase * d.cfg.Length
		got := d.Ambient()
		if math.Abs(got.R-key.tint.R) > 1e-9 ||
			math.Abs(got.Alpha-key.tint.Alpha) > 1e-9 {
			t.Errorf("Phase %.2f: Ambient() = %+v, want keyframe %+v", key.phase, got, key.tint)
		}
	}
}

func TestAmbientInterpolatesBetweenKeyframes(t *testing.T) {
	d := newTestDay()

	// Midpoint between the 0.00 and 0.10 keys.
	d.Clock = 0.05 * d.cfg.Length
	got := d.Ambient()
	a, b := dayPalette[0].tint, dayPalette[1].tint
	if math.Abs(got.R-(a.R+b.R)/2) > 1e-9 {
		t.Errorf("Midpoint R = %.4f, want %.4f", got.R, (a.R+b.R)/2)
	}
	if math.Abs(got.Alpha-(a.Alpha+b.Alpha)/2) > 1e-9 {
		t.Errorf("Midpoint Alpha = %.4f, want %.4f", got.Alpha, (a.Alpha+b.Alpha)/2)
	}
}

func TestAmbientWrapsPastLastKeyframe(t *testing.T) {
	d := newTestDay()

	// Halfway through the wrap segment from the 0.95 key back to 0.00.
	// The segment spans 0.05 of the day, so 0.975 is its midpoint.
	d.Clock = 0.975 * d.cfg.Length
	got := d.Ambient()
	last := dayPalette[len(dayPalette)-1].tint
	first := dayPalette[0].tint
	wantR := (last.R + first.R) / 2
	if math.Abs(got.R-wantR) > 1e-9 {
		t.Errorf("Wrap midpoint R = %.4f, want %.4f", got.R, wantR)
	}
}

func TestAmbientIsPureFunctionOfPhase(t *testing.T) {
	d := newTestDay()
	d.Clock = 0.33 * d.cfg.Length

	first := d.Ambient()
	for i := 0; i < 5; i++ {
		if d.Ambient() != first {
			t.Fatal("Ambient should not mutate state between calls")
		}
	}
}
