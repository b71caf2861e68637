package bridge

import (
	"pomoglass/internal/engine"
	"pomoglass/internal/stats"
)

// Engine is the slice of the session engine the bridge drives.
type Engine interface {
	Start(engine.Overrides)
	Pause()
	Reset()
	ApplyPreset(name string) bool
	UpdateDurations(engine.Overrides)
	State() engine.Snapshot
	Stats() stats.Daily
}
