package engine

import (
	"context"
	"testing"
	"time"

	"pomoglass/internal/stats"
)

type memStore struct {
	loaded stats.Daily
	saved  []stats.Daily
}

func (m *memStore) Load(now time.Time) stats.Daily {
	if m.loaded.Date == "" {
		return stats.Zero(now)
	}
	return m.loaded
}

func (m *memStore) Save(daily stats.Daily) error {
	m.saved = append(m.saved, daily)
	return nil
}

type memRecorder struct {
	phases  []string
	seconds []int
}

func (m *memRecorder) RecordPhase(_ context.Context, _, phase string, seconds int, _ time.Time) error {
	m.phases = append(m.phases, phase)
	m.seconds = append(m.seconds, seconds)
	return nil
}

func newTestEngine(t *testing.T) (*Engine, *memStore, *memRecorder) {
	t.Helper()
	store := &memStore{}
	rec := &memRecorder{}
	return New(store, rec, nil, Options{}), store, rec
}

func TestTickCountsDownDuringFocus(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Start(Overrides{})
	e.advance(90)

	got := e.State()
	if got.RemainingSeconds != DefaultWorkSeconds-90 {
		t.Fatalf("remaining = %d, want %d", got.RemainingSeconds, DefaultWorkSeconds-90)
	}
	if !got.Running || got.Phase != PhaseFocus {
		t.Fatalf("unexpected state: %+v", got)
	}
	if s := e.Stats(); s.FocusSeconds != 90 || s.BreakSeconds != 0 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}

func TestAdvanceIgnoredWhilePaused(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Start(Overrides{})
	e.advance(30)
	e.Pause()
	e.advance(600)

	got := e.State()
	if got.Running {
		t.Fatalf("expected paused engine")
	}
	if got.RemainingSeconds != DefaultWorkSeconds-30 {
		t.Fatalf("pause did not preserve remaining: %d", got.RemainingSeconds)
	}

	// Resuming keeps the carried-over remaining time.
	e.Start(Overrides{})
	if got := e.State(); got.RemainingSeconds != DefaultWorkSeconds-30 {
		t.Fatalf("resume reset remaining: %d", got.RemainingSeconds)
	}
}

func TestFocusCompletionStartsShortBreak(t *testing.T) {
	e, store, rec := newTestEngine(t)
	e.Start(Overrides{WorkMinutes: 1, BreakMinutes: 1})
	e.advance(60)

	got := e.State()
	if got.Phase != PhaseShortBreak {
		t.Fatalf("phase = %s, want short break", got.Phase)
	}
	if got.RemainingSeconds != 60 {
		t.Fatalf("remaining = %d, want 60", got.RemainingSeconds)
	}
	if got.CycleProgress != 1 {
		t.Fatalf("cycle progress = %d, want 1", got.CycleProgress)
	}
	if s := e.Stats(); s.Count != 1 || s.FocusSeconds != 60 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one stats flush, got %d", len(store.saved))
	}
	if len(rec.phases) != 1 || rec.phases[0] != string(PhaseFocus) || rec.seconds[0] != 60 {
		t.Fatalf("unexpected history entries: %v %v", rec.phases, rec.seconds)
	}
}

func TestClassicScheduleReachesLongBreak(t *testing.T) {
	// work=25m, break=5m, long=15m, interval=4: after the 4th focus
	// completion the engine must sit in a 900s long break with count 4.
	e, _, _ := newTestEngine(t)
	e.Start(Overrides{})

	for i := 0; i < 3; i++ {
		e.advance(25 * 60) // focus -> short break
		if got := e.State(); got.Phase != PhaseShortBreak {
			t.Fatalf("cycle %d: phase = %s, want short break", i+1, got.Phase)
		}
		e.advance(5 * 60) // short break -> focus
		if got := e.State(); got.Phase != PhaseFocus {
			t.Fatalf("cycle %d: phase = %s, want focus", i+1, got.Phase)
		}
	}

	e.advance(25 * 60)
	got := e.State()
	if got.Phase != PhaseLongBreak {
		t.Fatalf("phase = %s, want long break", got.Phase)
	}
	if got.RemainingSeconds != 900 {
		t.Fatalf("remaining = %d, want 900", got.RemainingSeconds)
	}
	s := e.Stats()
	if s.Count != 4 || s.ShortBreaks != 3 {
		t.Fatalf("unexpected stats: %+v", s)
	}

	e.advance(900)
	if got := e.State(); got.Phase != PhaseFocus {
		t.Fatalf("after long break phase = %s, want focus", got.Phase)
	}
	if s := e.Stats(); s.LongBreaks != 1 {
		t.Fatalf("long breaks = %d, want 1", s.LongBreaks)
	}
}

func TestAdvanceSpansPhaseBoundary(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Start(Overrides{WorkMinutes: 1, BreakMinutes: 2})
	// 60s of focus plus 10s into the break in one window.
	e.advance(70)

	got := e.State()
	if got.Phase != PhaseShortBreak {
		t.Fatalf("phase = %s, want short break", got.Phase)
	}
	if got.RemainingSeconds != 110 {
		t.Fatalf("remaining = %d, want 110", got.RemainingSeconds)
	}
	s := e.Stats()
	if s.FocusSeconds != 60 || s.BreakSeconds != 10 {
		t.Fatalf("seconds split wrong: %+v", s)
	}
}

func TestResetReturnsToFocus(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Start(Overrides{WorkMinutes: 1, BreakMinutes: 1})
	e.advance(75) // inside the short break
	e.Reset()

	got := e.State()
	if got.Running {
		t.Fatalf("reset left engine running")
	}
	if got.Phase != PhaseFocus || got.CycleProgress != 0 {
		t.Fatalf("unexpected state after reset: %+v", got)
	}
	if got.RemainingSeconds != got.WorkSeconds {
		t.Fatalf("remaining = %d, want %d", got.RemainingSeconds, got.WorkSeconds)
	}
}

func TestApplyPreset(t *testing.T) {
	e, _, _ := newTestEngine(t)

	if !e.ApplyPreset("Deep 50/10") {
		t.Fatalf("known preset rejected")
	}
	got := e.State()
	if got.WorkSeconds != 50*60 || got.BreakSeconds != 10*60 ||
		got.LongBreakSeconds != 20*60 || got.LongBreakInterval != 3 {
		t.Fatalf("preset durations not installed: %+v", got)
	}
	if got.RemainingSeconds != 50*60 || got.Phase != PhaseFocus {
		t.Fatalf("preset did not reset timer: %+v", got)
	}

	if e.ApplyPreset("Nonsense 1/1") {
		t.Fatalf("unknown preset applied")
	}
	if e.ApplyPreset(PresetCustom) {
		t.Fatalf("custom sentinel applied")
	}
	if after := e.State(); after.WorkSeconds != 50*60 {
		t.Fatalf("no-op preset changed durations: %+v", after)
	}
}

func TestOverridesIgnoreNonPositive(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.UpdateDurations(Overrides{WorkMinutes: -5, BreakMinutes: 0, LongBreakMinutes: 30, Interval: 2})

	got := e.State()
	if got.WorkSeconds != DefaultWorkSeconds {
		t.Fatalf("negative work override applied: %d", got.WorkSeconds)
	}
	if got.BreakSeconds != DefaultBreakSeconds {
		t.Fatalf("zero break override applied: %d", got.BreakSeconds)
	}
	if got.LongBreakSeconds != 30*60 || got.LongBreakInterval != 2 {
		t.Fatalf("positive overrides dropped: %+v", got)
	}
}

func TestUpdateDurationsRefreshesStoppedTimer(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.UpdateDurations(Overrides{WorkMinutes: 10})
	if got := e.State(); got.RemainingSeconds != 10*60 {
		t.Fatalf("stopped timer not refreshed: %d", got.RemainingSeconds)
	}

	e.Start(Overrides{})
	e.advance(30)
	e.UpdateDurations(Overrides{WorkMinutes: 40})
	if got := e.State(); got.RemainingSeconds != 10*60-30 {
		t.Fatalf("running timer was refreshed: %d", got.RemainingSeconds)
	}
}

func TestStartInstallsPhaseDurationOnlyWhenIdle(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.Start(Overrides{WorkMinutes: 2})
	if got := e.State(); got.RemainingSeconds != 120 {
		t.Fatalf("remaining = %d, want 120", got.RemainingSeconds)
	}

	// Starting again while running must not restart the countdown.
	e.advance(40)
	e.Start(Overrides{})
	if got := e.State(); got.RemainingSeconds != 80 {
		t.Fatalf("second start reset countdown: %d", got.RemainingSeconds)
	}
}

func TestPresetNamesStableOrder(t *testing.T) {
	names := PresetNames()
	if len(names) != 5 {
		t.Fatalf("expected 5 presets, got %d", len(names))
	}
	if names[0] != "Classic 25/5" || names[len(names)-1] != PresetCustom {
		t.Fatalf("unexpected preset order: %v", names)
	}
}
