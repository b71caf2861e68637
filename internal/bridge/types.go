package bridge

import (
	"pomoglass/internal/engine"
	"pomoglass/internal/stats"
)

// Response is the envelope written back for every request line.
type Response struct {
	OK    bool          `json:"ok"`
	State *StatePayload `json:"state,omitempty"`
	Stats *stats.Daily  `json:"stats,omitempty"`
	Error string        `json:"error,omitempty"`
}

// StatePayload is the wire form of a state snapshot, plus the mode label
// and the preset menu the presentation layer renders.
type StatePayload struct {
	WorkSeconds       int      `json:"work_seconds"`
	BreakSeconds      int      `json:"break_seconds"`
	LongBreakSeconds  int      `json:"long_break_seconds"`
	LongBreakInterval int      `json:"long_break_interval"`
	RemainingSeconds  int      `json:"remaining_seconds"`
	Running           bool     `json:"running"`
	IsBreak           bool     `json:"is_break"`
	BreakKind         string   `json:"break_kind"`
	CycleProgress     int      `json:"cycle_progress"`
	Mode              string   `json:"mode"`
	Presets           []string `json:"presets"`
}

func statePayload(s engine.Snapshot) *StatePayload {
	kind := "short"
	if s.Phase == engine.PhaseLongBreak {
		kind = "long"
	}
	return &StatePayload{
		WorkSeconds:       s.WorkSeconds,
		BreakSeconds:      s.BreakSeconds,
		LongBreakSeconds:  s.LongBreakSeconds,
		LongBreakInterval: s.LongBreakInterval,
		RemainingSeconds:  s.RemainingSeconds,
		Running:           s.Running,
		IsBreak:           s.Phase.IsBreak(),
		BreakKind:         kind,
		CycleProgress:     s.CycleProgress,
		Mode:              s.Phase.Label(),
		Presets:           engine.PresetNames(),
	}
}
