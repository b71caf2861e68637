package engine

import (
	"context"
	"time"

	"pomoglass/internal/stats"
)

// StatsStore persists the daily counters. Load never fails: a missing,
// malformed, or stale file yields zeroed counters for today.
type StatsStore interface {
	Load(now time.Time) stats.Daily
	Save(daily stats.Daily) error
}

// Recorder receives one entry per completed phase for long-term history.
type Recorder interface {
	RecordPhase(ctx context.Context, runID, phase string, seconds int, completedAt time.Time) error
}
