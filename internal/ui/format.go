package ui

import (
	"fmt"

	"pomoglass/internal/engine"
	"pomoglass/internal/stats"
)

// FormatClock renders whole seconds as MM:SS. Hours spill into the
// minutes field, matching the original display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func focusSummary(daily stats.Daily) string {
	return fmt.Sprintf("%dm focus / %dm break", daily.FocusSeconds/60, daily.BreakSeconds/60)
}

func breaksSummary(daily stats.Daily) string {
	return fmt.Sprintf("%d short / %d long", daily.ShortBreaks, daily.LongBreaks)
}

// cycleStatus describes where the current focus run sits in the long
// break cycle, e.g. "Session 2 of 4".
func cycleStatus(s engine.Snapshot) string {
	if s.Phase.IsBreak() {
		return s.Phase.Label()
	}
	if s.LongBreakInterval <= 0 {
		return "Focus"
	}
	position := s.CycleProgress%s.LongBreakInterval + 1
	return fmt.Sprintf("Session %d of %d", position, s.LongBreakInterval)
}

// phaseFraction is how much of the current phase has elapsed, in [0, 1].
func phaseFraction(s engine.Snapshot) float64 {
	var total int
	switch s.Phase {
	case engine.PhaseShortBreak:
		total = s.BreakSeconds
	case engine.PhaseLongBreak:
		total = s.LongBreakSeconds
	default:
		total = s.WorkSeconds
	}
	if total <= 0 {
		return 1
	}
	fraction := float64(total-s.RemainingSeconds) / float64(total)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
