package uptime

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// fileState is the on-disk shape of the persisted counter.
type fileState struct {
	ContinuousSeconds float64   `json:"continuousSeconds"`
	SavedAt           time.Time `json:"savedAt"`
}

// Store persists the accumulated runtime so the "continuously running for
// three days" count can survive a restart when the owner opts in.
type Store struct {
	path string
}

// NewStore returns a store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted seconds. A missing file yields zero without an
// error; a corrupt file is an error so the caller can decide to start over.
func (s *Store) Load() (float64, error) {
	if s == nil || s.path == "" {
		return 0, nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read uptime state %s: %w", s.path, err)
	}
	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return 0, fmt.Errorf("parse uptime state %s: %w", s.path, err)
	}
	if state.ContinuousSeconds < 0 {
		return 0, nil
	}
	return state.ContinuousSeconds, nil
}

// Save writes the current seconds atomically (temp file + rename).
func (s *Store) Save(seconds float64, now time.Time) error {
	if s == nil || s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(fileState{
		ContinuousSeconds: seconds,
		SavedAt:           now,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal uptime state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create uptime state directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write uptime state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace uptime state: %w", err)
	}
	return nil
}
