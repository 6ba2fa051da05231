package memory

import (
	"sync"

	"github.com/custodia-labs/wikiwords/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Location is what ConfigStore reports as its path.
const Location = ":memory:"

// ConfigStore keeps settings in a map for the lifetime of the process.
// Runs without a usable config directory fall back to it, as do tests.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty store, so every setting resolves to its default.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString returns "" for missing and non-string values.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt truncates floats and returns 0 for missing and non-numeric values.
func (s *ConfigStore) GetInt(key string) int {
	return int(s.number(key))
}

// GetFloat returns 0 for missing and non-numeric values.
func (s *ConfigStore) GetFloat(key string) float64 {
	return s.number(key)
}

func (s *ConfigStore) number(key string) float64 {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
	return nil
}

// Save does nothing; values live only as long as the process.
func (s *ConfigStore) Save() error { return nil }

// Load does nothing; there is nothing to read back.
func (s *ConfigStore) Load() error { return nil }

func (s *ConfigStore) Path() string { return Location }
