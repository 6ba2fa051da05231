package driving

import "github.com/custodia-labs/wikiwords/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set parses and saves a single value addressed by its dotted key.
	Set(key, value string) error

	// Keys lists the keys accepted by Set.
	Keys() []string

	// Validate checks that the current settings can drive a run.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Path returns where settings are stored.
	Path() string
}
