// Package memory persists session history, user preferences, and tool
// statistics as a single JSON file. The file is read at startup and
// written only on explicit save or export; there is no schema versioning.
package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/configo-dev/configo/pkg/models"
)

// SessionRecord is one entry in the session history.
type SessionRecord struct {
	// ID identifies the session.
	ID string `json:"id"`
	// Description is the environment description that drove the session.
	Description string `json:"description"`
	// StartedAt is when the session began.
	StartedAt time.Time `json:"started_at"`
	// ToolsInstalled is the number of successfully installed tools.
	ToolsInstalled int `json:"tools_installed"`
	// ToolsFailed is the number of failed tools.
	ToolsFailed int `json:"tools_failed"`
	// Success is the overall run outcome.
	Success bool `json:"success"`
}

// ToolStats accumulates per-tool installation outcomes.
type ToolStats struct {
	Installs    int       `json:"installs"`
	Failures    int       `json:"failures"`
	LastInstall time.Time `json:"last_install,omitempty"`
}

// data is the on-disk shape of the memory file.
type data struct {
	SessionHistory  []SessionRecord                `json:"session_history"`
	UserPreferences map[string]string              `json:"user_preferences"`
	ToolStatistics  map[string]ToolStats           `json:"tool_statistics"`
	Portals         map[string]models.PortalStatus `json:"portals"`
}

// Store is the memory store. All methods are safe for concurrent use.
type Store struct {
	path string

	mu sync.RWMutex
	d  data
}

// Open loads the memory file at path, creating an empty store when the
// file does not exist. A corrupt file is an error; the caller decides
// whether to start fresh.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	s.d = emptyData()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading memory file: %w", err)
	}

	if err := json.Unmarshal(raw, &s.d); err != nil {
		return nil, fmt.Errorf("parsing memory file %s: %w", path, err)
	}
	// Maps may be null in hand-edited files.
	if s.d.UserPreferences == nil {
		s.d.UserPreferences = map[string]string{}
	}
	if s.d.ToolStatistics == nil {
		s.d.ToolStatistics = map[string]ToolStats{}
	}
	if s.d.Portals == nil {
		s.d.Portals = map[string]models.PortalStatus{}
	}
	return s, nil
}

func emptyData() data {
	return data{
		SessionHistory:  []SessionRecord{},
		UserPreferences: map[string]string{},
		ToolStatistics:  map[string]ToolStats{},
		Portals:         map[string]models.PortalStatus{},
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save writes the store to disk, creating parent directories as needed.
func (s *Store) Save() error {
	s.mu.RLock()
	raw, err := json.MarshalIndent(s.d, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encoding memory: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating memory directory: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("writing memory file: %w", err)
	}
	return nil
}

// Export writes a copy of the store to the given path.
func (s *Store) Export(path string) error {
	s.mu.RLock()
	raw, err := json.MarshalIndent(s.d, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encoding memory: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("exporting memory: %w", err)
	}
	return nil
}

// Clear drops all stored data in memory. Callers persist with Save.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d = emptyData()
}

// AddSession appends a session record to the history.
func (s *Store) AddSession(rec SessionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.SessionHistory = append(s.d.SessionHistory, rec)
}

// Sessions returns a copy of the session history, oldest first.
func (s *Store) Sessions() []SessionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]SessionRecord(nil), s.d.SessionHistory...)
}

// SetPreference stores a user preference.
func (s *Store) SetPreference(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.UserPreferences[key] = value
}

// Preference returns a user preference and whether it was set.
func (s *Store) Preference(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.d.UserPreferences[key]
	return v, ok
}

// Preferences returns a copy of all user preferences.
func (s *Store) Preferences() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.d.UserPreferences))
	for k, v := range s.d.UserPreferences {
		out[k] = v
	}
	return out
}

// RecordInstall updates a tool's statistics after an install attempt.
func (s *Store) RecordInstall(tool string, success bool, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := s.d.ToolStatistics[tool]
	if success {
		stats.Installs++
		stats.LastInstall = at
	} else {
		stats.Failures++
	}
	s.d.ToolStatistics[tool] = stats
}

// Stats returns a copy of all tool statistics.
func (s *Store) Stats() map[string]ToolStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]ToolStats, len(s.d.ToolStatistics))
	for k, v := range s.d.ToolStatistics {
		out[k] = v
	}
	return out
}

// SetPortalStatus stores the tracked state for a portal.
func (s *Store) SetPortalStatus(status models.PortalStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Portals[status.Name] = status
}

// PortalStatus returns the tracked state for a portal, if any.
func (s *Store) PortalStatus(name string) (models.PortalStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.d.Portals[name]
	return st, ok
}
