// Package store persists the config and state documents as pretty-printed
// JSON files. Writes go to a temporary file first and are renamed into
// place, so a crash mid-write never leaves a truncated document.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kopilka/internal/model"
)

const (
	configFile = "config.json"
	stateFile  = "state.json"
)

// Store reads and writes the two JSON documents under a single data dir.
type Store struct {
	dir string
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the XDG-compliant data directory.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "kopilka")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "kopilka")
}

// ConfigPath returns the full path to the config document.
func (s *Store) ConfigPath() string {
	return filepath.Join(s.dir, configFile)
}

// StatePath returns the full path to the state document.
func (s *Store) StatePath() string {
	return filepath.Join(s.dir, stateFile)
}

// LoadConfig reads the config document. A missing file, unreadable JSON,
// or a document without the isFirstLaunch key (a state document saved in
// its place, say) all yield the defaults rather than an error: this is a
// single-user tool and availability wins over strict validation.
func (s *Store) LoadConfig() model.Config {
	data, err := os.ReadFile(s.ConfigPath())
	if err != nil {
		return model.DefaultConfig()
	}

	// The key probe distinguishes a config document from some other JSON
	// value written to the same path.
	var probe struct {
		IsFirstLaunch *bool `json:"isFirstLaunch"`
	}
	if err := json.Unmarshal(data, &probe); err != nil || probe.IsFirstLaunch == nil {
		return model.DefaultConfig()
	}

	cfg := model.DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.DefaultConfig()
	}
	return cfg
}

// SaveConfig writes the config document atomically.
func (s *Store) SaveConfig(cfg model.Config) error {
	return s.writeJSON(s.ConfigPath(), cfg)
}

// LoadState reads the state document, with the same corruption fallback as
// LoadConfig, keyed on the presence of the transactions field.
func (s *Store) LoadState() model.State {
	data, err := os.ReadFile(s.StatePath())
	if err != nil {
		return model.DefaultState()
	}

	var probe struct {
		Transactions *json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(data, &probe); err != nil || probe.Transactions == nil {
		return model.DefaultState()
	}

	st := model.DefaultState()
	if err := json.Unmarshal(data, &st); err != nil {
		return model.DefaultState()
	}
	if st.Transactions == nil {
		st.Transactions = []model.Transaction{}
	}
	if st.Goals == nil {
		st.Goals = []model.Goal{}
	}
	return st
}

// SaveState writes the state document atomically.
func (s *Store) SaveState(st model.State) error {
	return s.writeJSON(s.StatePath(), st)
}

// BackupState copies the current state document to a timestamped file in
// the data dir and returns its path. The live document is left untouched.
func (s *Store) BackupState() (string, error) {
	st := s.LoadState()
	stamp := time.Now().UTC().Format("20060102T150405Z")
	path := filepath.Join(s.dir, fmt.Sprintf("state_backup_%s.json", stamp))
	if err := s.writeJSON(path, st); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) writeJSON(path string, v any) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
