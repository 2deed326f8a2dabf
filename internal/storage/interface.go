package storage

import "github.com/julianstephens/ecotrack/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Saved footprint entries
	AddEntry(models.Entry) error
	GetEntry(id string) (models.Entry, error)
	GetAllEntries() ([]models.Entry, error)
	DeleteEntry(id string) error

	// Utils
	GetConfigPath() string
}

// Settings are user preferences applied when computing footprints.
type Settings struct {
	Currency      string `json:"currency"`
	MealsPerMonth int    `json:"meals_per_month"`
}

// DefaultSettings returns the settings a fresh store is initialized with.
func DefaultSettings() Settings {
	return Settings{
		Currency:      "INR",
		MealsPerMonth: 90,
	}
}
