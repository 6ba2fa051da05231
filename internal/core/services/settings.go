package services

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driven"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyArticleURL     = "article.url"
	keyStartSection   = "article.start_section"
	keyEndSection     = "article.end_section"
	keyDefaultLimit   = "report.default_limit"
	keyFetchTimeout   = "fetch.timeout_seconds"
	keyFetchUserAgent = "fetch.user_agent"
	keyFetchRate      = "fetch.requests_per_second"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or unusable values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Article: domain.ArticleSettings{
			URL:          s.getString(keyArticleURL, defaults.Article.URL),
			StartSection: s.getString(keyStartSection, defaults.Article.StartSection),
			EndSection:   s.getString(keyEndSection, defaults.Article.EndSection),
		},
		Report: domain.ReportSettings{
			DefaultLimit: s.getPositiveInt(keyDefaultLimit, defaults.Report.DefaultLimit),
		},
		Fetch: domain.FetchSettings{
			Timeout:           s.getTimeout(defaults.Fetch.Timeout),
			UserAgent:         s.getString(keyFetchUserAgent, defaults.Fetch.UserAgent),
			RequestsPerSecond: s.getPositiveFloat(keyFetchRate, defaults.Fetch.RequestsPerSecond),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{keyArticleURL, settings.Article.URL},
		{keyStartSection, settings.Article.StartSection},
		{keyEndSection, settings.Article.EndSection},
		{keyDefaultLimit, settings.Report.DefaultLimit},
		{keyFetchTimeout, int(settings.Fetch.Timeout / time.Second)},
		{keyFetchUserAgent, settings.Fetch.UserAgent},
		{keyFetchRate, settings.Fetch.RequestsPerSecond},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Keys lists the setting keys accepted by Set, in display order.
func (s *SettingsService) Keys() []string {
	return slices.Clone(settingKeys)
}

var settingKeys = []string{
	keyArticleURL,
	keyStartSection,
	keyEndSection,
	keyDefaultLimit,
	keyFetchTimeout,
	keyFetchUserAgent,
	keyFetchRate,
}

// Set parses value for key, validates the resulting settings and saves them.
func (s *SettingsService) Set(key, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case keyArticleURL:
		settings.Article.URL = value
	case keyStartSection:
		settings.Article.StartSection = value
	case keyEndSection:
		settings.Article.EndSection = value
	case keyFetchUserAgent:
		settings.Fetch.UserAgent = value
	case keyDefaultLimit:
		n, err := parsePositiveInt(key, value)
		if err != nil {
			return err
		}
		settings.Report.DefaultLimit = n
	case keyFetchTimeout:
		n, err := parsePositiveInt(key, value)
		if err != nil {
			return err
		}
		settings.Fetch.Timeout = time.Duration(n) * time.Second
	case keyFetchRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.Fetch.RequestsPerSecond = f
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidInput, key)
	}

	if err := validate(settings); err != nil {
		return err
	}
	return s.Save(settings)
}

// Validate checks that the current settings can drive a run.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return validate(settings)
}

func validate(settings *domain.AppSettings) error {
	u, err := url.Parse(settings.Article.URL)
	if err != nil {
		return fmt.Errorf("%w: article url: %w", domain.ErrInvalidSettings, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: article url %q must be an absolute http(s) URL", domain.ErrInvalidSettings, settings.Article.URL)
	}
	if settings.Article.StartSection == settings.Article.EndSection {
		return fmt.Errorf("%w: start and end section are both %q", domain.ErrInvalidSettings, settings.Article.StartSection)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns where settings are stored.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func parsePositiveInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, value)
	}
	return n, nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getPositiveFloat(key string, defaultVal float64) float64 {
	if val := s.configStore.GetFloat(key); val > 0 {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getTimeout(defaultVal time.Duration) time.Duration {
	if secs := s.configStore.GetInt(keyFetchTimeout); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultVal
}
