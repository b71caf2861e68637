package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore keeps a ledger of completed phases across days. One row per
// phase completion; the daily JSON counters stay the canonical "today"
// document, this is the long-term record behind the summary views.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS phase_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			phase TEXT NOT NULL,
			seconds INTEGER NOT NULL,
			day TEXT NOT NULL,
			completed_ts TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_phase_log_day ON phase_log(day);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) RecordPhase(ctx context.Context, runID, phase string, seconds int, completedAt time.Time) error {
	if seconds < 0 {
		seconds = 0
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO phase_log(run_id, phase, seconds, day, completed_ts) VALUES(?,?,?,?,?)`,
		runID,
		phase,
		seconds,
		completedAt.Local().Format("2006-01-02"),
		completedAt.UTC().Format(timeLayout),
	)
	return err
}

func (s *SQLiteStore) Summary(ctx context.Context) (Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT phase, COUNT(*), COALESCE(SUM(seconds), 0)
		FROM phase_log
		GROUP BY phase
	`)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()

	var out Summary
	for rows.Next() {
		var (
			phase   string
			count   int
			seconds int
		)
		if err := rows.Scan(&phase, &count, &seconds); err != nil {
			return Summary{}, err
		}
		switch phase {
		case "focus":
			out.FocusSessions = count
			out.FocusSeconds = seconds
		case "short_break":
			out.ShortBreaks = count
			out.BreakSeconds += seconds
		case "long_break":
			out.LongBreaks = count
			out.BreakSeconds += seconds
		}
	}
	return out, rows.Err()
}

func (s *SQLiteStore) RecentDays(ctx context.Context, days int) ([]DayTotal, error) {
	if days <= 0 {
		days = 7
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, COUNT(*), COALESCE(SUM(seconds), 0)
		FROM phase_log
		WHERE phase = 'focus'
		GROUP BY day
		ORDER BY day DESC
		LIMIT ?
	`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DayTotal
	for rows.Next() {
		var d DayTotal
		if err := rows.Scan(&d.Day, &d.FocusCount, &d.FocusSeconds); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
