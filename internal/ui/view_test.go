package ui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"pomoglass/internal/engine"
	"pomoglass/internal/history"
	"pomoglass/internal/stats"
)

type mockController struct {
	snap engine.Snapshot

	startCalls  int
	pauseCalls  int
	resetCalls  int
	presets     []string
	overrides   []engine.Overrides
	presetKnown bool
}

func (m *mockController) Start(engine.Overrides) { m.startCalls++; m.snap.Running = true }
func (m *mockController) Pause()                 { m.pauseCalls++; m.snap.Running = false }
func (m *mockController) Reset()                 { m.resetCalls++ }
func (m *mockController) ApplyPreset(name string) bool {
	m.presets = append(m.presets, name)
	return m.presetKnown
}
func (m *mockController) UpdateDurations(o engine.Overrides) { m.overrides = append(m.overrides, o) }
func (m *mockController) State() engine.Snapshot             { return m.snap }
func (m *mockController) Stats() stats.Daily                 { return stats.Daily{Date: "2026-08-30"} }

type mockHistory struct{}

func (mockHistory) Summary(context.Context) (history.Summary, error) {
	return history.Summary{FocusSessions: 7, ShortBreaks: 5, LongBreaks: 1}, nil
}

func (mockHistory) RecentDays(context.Context, int) ([]history.DayTotal, error) {
	return []history.DayTotal{
		{Day: "2026-08-30", FocusCount: 3, FocusSeconds: 4500},
		{Day: "2026-08-29", FocusCount: 1, FocusSeconds: 1500},
	}, nil
}

func newMockController() *mockController {
	return &mockController{
		snap: engine.Snapshot{
			WorkSeconds:       engine.DefaultWorkSeconds,
			BreakSeconds:      engine.DefaultBreakSeconds,
			LongBreakSeconds:  engine.DefaultLongBreakSeconds,
			LongBreakInterval: engine.DefaultLongBreakInterval,
			RemainingSeconds:  engine.DefaultWorkSeconds,
			Phase:             engine.PhaseFocus,
		},
		presetKnown: true,
	}
}

func press(m *Model, code rune, text string) {
	_, _ = m.Update(tea.KeyPressMsg{Code: code, Text: text})
}

func TestSpaceTogglesStartAndPause(t *testing.T) {
	ctrl := newMockController()
	m := New(Options{Controller: ctrl, History: mockHistory{}})

	press(m, ' ', " ")
	if ctrl.startCalls != 1 {
		t.Fatalf("expected one start call, got %d", ctrl.startCalls)
	}
	press(m, ' ', " ")
	if ctrl.pauseCalls != 1 {
		t.Fatalf("expected one pause call, got %d", ctrl.pauseCalls)
	}
}

func TestResetKeyDelegates(t *testing.T) {
	ctrl := newMockController()
	m := New(Options{Controller: ctrl})

	press(m, 'r', "r")
	if ctrl.resetCalls != 1 {
		t.Fatalf("expected one reset call, got %d", ctrl.resetCalls)
	}
}

func TestTabCyclesThroughPresets(t *testing.T) {
	ctrl := newMockController()
	m := New(Options{Controller: ctrl, Preset: "Classic 25/5"})

	press(m, tea.KeyTab, "")
	if len(ctrl.presets) != 1 || ctrl.presets[0] != "Quick 15/3" {
		t.Fatalf("expected Quick 15/3 applied, got %v", ctrl.presets)
	}
	if m.presetName != "Quick 15/3" {
		t.Fatalf("expected preset name to advance, got %q", m.presetName)
	}
}

func TestAdjustBelowOneKeepsValueAndWarns(t *testing.T) {
	ctrl := newMockController()
	ctrl.snap.WorkSeconds = 60
	m := New(Options{Controller: ctrl})

	press(m, tea.KeyDown, "")
	if len(ctrl.overrides) != 0 {
		t.Fatalf("expected no duration update, got %v", ctrl.overrides)
	}
	if m.validation == "" {
		t.Fatalf("expected a validation message")
	}
}

func TestAdjustSwitchesPresetToCustom(t *testing.T) {
	ctrl := newMockController()
	m := New(Options{Controller: ctrl, Preset: "Classic 25/5"})

	press(m, tea.KeyUp, "")
	if len(ctrl.overrides) != 1 || ctrl.overrides[0].WorkMinutes != 26 {
		t.Fatalf("expected work bumped to 26, got %v", ctrl.overrides)
	}
	if m.presetName != engine.PresetCustom {
		t.Fatalf("expected Custom after manual edit, got %q", m.presetName)
	}
}

func TestFieldSelectionWraps(t *testing.T) {
	ctrl := newMockController()
	m := New(Options{Controller: ctrl})

	press(m, tea.KeyLeft, "")
	if m.field != fieldInterval {
		t.Fatalf("expected wrap to interval field, got %v", m.field)
	}
	press(m, tea.KeyRight, "")
	if m.field != fieldWork {
		t.Fatalf("expected wrap back to work field, got %v", m.field)
	}
}

func TestDarkModeTogglesVariant(t *testing.T) {
	ctrl := newMockController()
	m := New(Options{Controller: ctrl, Variant: "glass_light"})

	press(m, 'd', "d")
	if m.variant != "glass_dark" {
		t.Fatalf("expected glass_dark, got %q", m.variant)
	}
	press(m, 'd', "d")
	if m.variant != "glass_light" {
		t.Fatalf("expected glass_light, got %q", m.variant)
	}
}

func TestSummaryShowsRecentDays(t *testing.T) {
	ctrl := newMockController()
	m := New(Options{Controller: ctrl, History: mockHistory{}})

	msg := m.loadSummaryCmd()()
	_, _ = m.Update(msg)

	if m.allTimeFocus != 7 || m.allTimeBreaks != 6 {
		t.Fatalf("all-time totals wrong: %d/%d", m.allTimeFocus, m.allTimeBreaks)
	}
	if len(m.recentDays) != 2 || m.recentDays[0].Day != "2026-08-30" {
		t.Fatalf("recent days wrong: %+v", m.recentDays)
	}

	tile := m.renderSummary()
	if !strings.Contains(tile, "2026-08-29  1 sessions, 25m") {
		t.Fatalf("recent day missing from summary tile: %q", tile)
	}
}
