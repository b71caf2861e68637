package ui

import (
	"testing"

	"pomoglass/internal/engine"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{1500, "25:00"},
		{3725, "62:05"},
		{-4, "00:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.seconds); got != tc.want {
			t.Fatalf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestCycleStatus(t *testing.T) {
	s := engine.Snapshot{Phase: engine.PhaseFocus, LongBreakInterval: 4, CycleProgress: 2}
	if got := cycleStatus(s); got != "Session 3 of 4" {
		t.Fatalf("got %q", got)
	}

	s.Phase = engine.PhaseLongBreak
	if got := cycleStatus(s); got != "Long Break" {
		t.Fatalf("got %q", got)
	}
}

func TestPhaseFractionClamps(t *testing.T) {
	s := engine.Snapshot{Phase: engine.PhaseFocus, WorkSeconds: 100, RemainingSeconds: 25}
	if got := phaseFraction(s); got != 0.75 {
		t.Fatalf("got %v", got)
	}

	s.RemainingSeconds = 150
	if got := phaseFraction(s); got != 0 {
		t.Fatalf("expected clamp to zero, got %v", got)
	}

	s.RemainingSeconds = -5
	if got := phaseFraction(s); got != 1 {
		t.Fatalf("expected clamp to one, got %v", got)
	}
}

func TestThemeForVariantFallsBackToLight(t *testing.T) {
	light := ThemeForVariant("glass_light")
	unknown := ThemeForVariant("neon")
	if light.Title.GetForeground() != unknown.Title.GetForeground() {
		t.Fatalf("unknown variant should fall back to glass_light")
	}
	dark := ThemeForVariant("glass_dark")
	if dark.Title.GetForeground() == light.Title.GetForeground() {
		t.Fatalf("dark variant should differ from light")
	}
}
