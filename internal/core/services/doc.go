// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// WordFrequencyService wires the article fetcher and section extractor to
// the pure text stages in internal/wordfreq. SettingsService resolves the
// stored configuration against the built-in defaults.
package services
