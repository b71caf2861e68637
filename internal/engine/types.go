package engine

import "time"

// Phase is the timer mode the engine is currently counting down.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Label returns the human-readable mode name for a phase.
func (p Phase) Label() string {
	switch p {
	case PhaseShortBreak:
		return "Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Focus"
	}
}

// IsBreak reports whether the phase is a short or long break.
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

const (
	DefaultWorkSeconds       = 25 * 60
	DefaultBreakSeconds      = 5 * 60
	DefaultLongBreakSeconds  = 15 * 60
	DefaultLongBreakInterval = 4
)

// Config holds the durations the state machine counts against.
// All values are positive; non-positive inputs never reach a Config.
type Config struct {
	WorkSeconds       int
	BreakSeconds      int
	LongBreakSeconds  int
	LongBreakInterval int
}

// DefaultConfig returns the classic 25/5/15 schedule with a long break
// every fourth focus session.
func DefaultConfig() Config {
	return Config{
		WorkSeconds:       DefaultWorkSeconds,
		BreakSeconds:      DefaultBreakSeconds,
		LongBreakSeconds:  DefaultLongBreakSeconds,
		LongBreakInterval: DefaultLongBreakInterval,
	}
}

// Overrides carries optional duration changes in minutes. A zero or
// negative field leaves the current value untouched.
type Overrides struct {
	WorkMinutes      int
	BreakMinutes     int
	LongBreakMinutes int
	Interval         int
}

// Snapshot is a copy of the engine state safe to hand to callers.
type Snapshot struct {
	WorkSeconds       int
	BreakSeconds      int
	LongBreakSeconds  int
	LongBreakInterval int
	RemainingSeconds  int
	Running           bool
	Phase             Phase
	CycleProgress     int
}

// Options contains runtime tuning for the tick loop.
type Options struct {
	TickInterval time.Duration
}
