package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/ecotrack/internal/models"
)

type Store struct {
	Version  int                     `json:"version"`
	Settings Settings                `json:"settings"`
	Entries  map[string]models.Entry `json:"entries"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: DefaultSettings(),
		Entries:  make(map[string]models.Entry),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'ecotrack init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.store.Entries == nil {
		s.store.Entries = make(map[string]models.Entry)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddEntry(entry models.Entry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Entries[entry.ID] = entry
	return s.save()
}

func (s *JSONStore) GetEntry(id string) (models.Entry, error) {
	if s.store == nil {
		return models.Entry{}, fmt.Errorf("storage not loaded")
	}

	entry, ok := s.store.Entries[id]
	if !ok {
		return models.Entry{}, fmt.Errorf("entry not found: %s", id)
	}

	return entry, nil
}

func (s *JSONStore) GetAllEntries() ([]models.Entry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := make([]models.Entry, 0, len(s.store.Entries))
	for _, entry := range s.store.Entries {
		entries = append(entries, entry)
	}

	// Newest first, by day then creation time
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return entries[i].Day > entries[j].Day
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

func (s *JSONStore) DeleteEntry(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Entries[id]; !ok {
		return fmt.Errorf("entry not found: %s", id)
	}

	delete(s.store.Entries, id)
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple ecotrack processes that share the same storage path at
//     the same time is not supported; the last writer wins.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
