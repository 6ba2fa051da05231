package domain

import "time"

// Defaults for a run against the Microsoft article.
const (
	DefaultArticleURL        = "https://en.wikipedia.org/wiki/Microsoft"
	DefaultStartSection      = "History"
	DefaultEndSection        = "Corporate_affairs"
	DefaultLimit             = 10
	DefaultFetchTimeout      = 30 * time.Second
	DefaultUserAgent         = "wikiwords/1.0 (+https://github.com/custodia-labs/wikiwords)"
	DefaultRequestsPerSecond = 1.0
)

// ArticleSettings selects the page and the section to analyse.
type ArticleSettings struct {
	// URL is the article address.
	URL string

	// StartSection is the id of the heading that opens the section.
	StartSection string

	// EndSection is the id of the heading that closes the section (exclusive).
	EndSection string
}

// ReportSettings holds report defaults.
type ReportSettings struct {
	// DefaultLimit is the number of rows used when the user gives no valid number.
	DefaultLimit int
}

// FetchSettings configures the HTTP client.
type FetchSettings struct {
	// Timeout bounds the whole request including reading the body.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// RequestsPerSecond paces outgoing requests.
	RequestsPerSecond float64
}

// AppSettings holds all application settings.
type AppSettings struct {
	Article ArticleSettings
	Report  ReportSettings
	Fetch   FetchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Article: ArticleSettings{
			URL:          DefaultArticleURL,
			StartSection: DefaultStartSection,
			EndSection:   DefaultEndSection,
		},
		Report: ReportSettings{
			DefaultLimit: DefaultLimit,
		},
		Fetch: FetchSettings{
			Timeout:           DefaultFetchTimeout,
			UserAgent:         DefaultUserAgent,
			RequestsPerSecond: DefaultRequestsPerSecond,
		},
	}
}
