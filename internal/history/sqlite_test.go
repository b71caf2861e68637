package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("new sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store
}

func TestSummaryAggregatesPhases(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

	records := []struct {
		phase   string
		seconds int
	}{
		{"focus", 1500},
		{"focus", 1500},
		{"short_break", 300},
		{"long_break", 900},
	}
	for _, rec := range records {
		if err := store.RecordPhase(ctx, "run-1", rec.phase, rec.seconds, at); err != nil {
			t.Fatalf("record %s: %v", rec.phase, err)
		}
	}

	got, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	want := Summary{
		FocusSessions: 2,
		ShortBreaks:   1,
		LongBreaks:    1,
		FocusSeconds:  3000,
		BreakSeconds:  1200,
	}
	if got != want {
		t.Fatalf("summary = %+v, want %+v", got, want)
	}
}

func TestRecentDaysOrdersAndLimits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.Local)
	for day := 0; day < 5; day++ {
		at := base.AddDate(0, 0, day)
		for i := 0; i <= day; i++ {
			if err := store.RecordPhase(ctx, "run-1", "focus", 1500, at); err != nil {
				t.Fatalf("record day %d: %v", day, err)
			}
		}
		if err := store.RecordPhase(ctx, "run-1", "short_break", 300, at); err != nil {
			t.Fatalf("record break day %d: %v", day, err)
		}
	}

	got, err := store.RecentDays(ctx, 3)
	if err != nil {
		t.Fatalf("recent days: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 days, got %d", len(got))
	}
	if got[0].Day != "2026-03-05" {
		t.Fatalf("expected newest day first, got %q", got[0].Day)
	}
	if got[0].FocusCount != 5 || got[0].FocusSeconds != 5*1500 {
		t.Fatalf("unexpected totals: %+v", got[0])
	}
}
