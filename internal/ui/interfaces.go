package ui

import (
	"context"

	"pomoglass/internal/engine"
	"pomoglass/internal/history"
	"pomoglass/internal/stats"
)

// Controller is the slice of the session engine the TUI drives.
type Controller interface {
	Start(engine.Overrides)
	Pause()
	Reset()
	ApplyPreset(name string) bool
	UpdateDurations(engine.Overrides)
	State() engine.Snapshot
	Stats() stats.Daily
}

// HistoryReader feeds the productivity summary panel.
type HistoryReader interface {
	Summary(ctx context.Context) (history.Summary, error)
	RecentDays(ctx context.Context, days int) ([]history.DayTotal, error)
}
