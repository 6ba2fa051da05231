// Command wikiwords prints the most frequent words of a Wikipedia article section.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/wikiwords/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wikiwords/internal/adapters/driven/extract/wikihtml"
	"github.com/custodia-labs/wikiwords/internal/adapters/driven/fetch/httpfetch"
	"github.com/custodia-labs/wikiwords/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiwords/internal/adapters/driving/cli"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driven"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driving"
	"github.com/custodia-labs/wikiwords/internal/core/services"
	"github.com/custodia-labs/wikiwords/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Root().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires the adapters into the core services.
func buildServices(configDir string) (driving.WordFrequencyService, driving.SettingsService, error) {
	configStore, err := openConfigStore(configDir)
	if err != nil {
		return nil, nil, err
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, err
	}

	fetcher := httpfetch.New(httpfetch.Config{
		Timeout:           settings.Fetch.Timeout,
		UserAgent:         settings.Fetch.UserAgent,
		RequestsPerSecond: settings.Fetch.RequestsPerSecond,
	})

	wordFrequencyService := services.NewWordFrequencyService(settingsService, fetcher, wikihtml.New())
	return wordFrequencyService, settingsService, nil
}

// openConfigStore opens config.toml in configDir. Without an explicit
// directory and without a home directory, settings are kept in memory and
// every run uses the defaults.
func openConfigStore(configDir string) (driven.ConfigStore, error) {
	if configDir == "" {
		if _, err := os.UserHomeDir(); err != nil {
			logger.Warn("No config directory (%v), using default settings", err)
			return memory.NewConfigStore(), nil
		}
	}
	return file.NewConfigStore(configDir)
}
