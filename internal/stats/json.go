package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// JSONStore reads and writes the daily counters as a small JSON document.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load returns the persisted counters for today. A missing file, unreadable
// JSON, out-of-range values, or a stale date all fall back to zeroed
// counters; none of these conditions is an error.
func (s *JSONStore) Load(now time.Time) Daily {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Zero(now)
	}

	var daily Daily
	if err := json.Unmarshal(raw, &daily); err != nil {
		return Zero(now)
	}
	if !daily.valid() {
		return Zero(now)
	}
	daily.Rollover(now)
	return daily
}

// Save writes the counters synchronously, creating the parent directory on
// first use.
func (s *JSONStore) Save(daily Daily) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create stats directory: %w", err)
	}
	raw, err := json.Marshal(daily)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	return nil
}
