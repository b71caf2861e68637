package history

import (
	"context"
	"time"
)

type Store interface {
	EnsureSchema(ctx context.Context) error
	RecordPhase(ctx context.Context, runID, phase string, seconds int, completedAt time.Time) error
	Summary(ctx context.Context) (Summary, error)
	RecentDays(ctx context.Context, days int) ([]DayTotal, error)
	Close() error
}

// Summary aggregates the full ledger across all days.
type Summary struct {
	FocusSessions int
	ShortBreaks   int
	LongBreaks    int
	FocusSeconds  int
	BreakSeconds  int
}

// DayTotal is the per-day focus rollup used by the summary panel.
type DayTotal struct {
	Day          string
	FocusCount   int
	FocusSeconds int
}
