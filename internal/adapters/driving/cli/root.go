// Package cli implements the wikiwords command line interface with cobra.
package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wikiwords/internal/core/ports/driving"
	"github.com/custodia-labs/wikiwords/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services used by the commands. They are either injected directly with
// SetServices or built lazily by the ServiceFactory once flags are parsed.
var (
	wordFrequencyService driving.WordFrequencyService
	settingsService      driving.SettingsService
	serviceFactory       ServiceFactory
)

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// ServiceFactory builds the services from the config directory given on the
// command line. An empty configDir means the default location.
type ServiceFactory func(configDir string) (driving.WordFrequencyService, driving.SettingsService, error)

var rootCmd = &cobra.Command{
	Use:   "wikiwords",
	Short: "Report the most frequent words in a Wikipedia article section",
	Long: `Fetches a Wikipedia article, takes the paragraphs of one section
(History of the Microsoft article by default) and prints the most frequent
words as a table.

You are asked how many words to show and which words to leave out.
Words are case sensitive and pure numbers are not counted.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	RunE:              runWordFrequency,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline progress to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml (default ~/.wikiwords)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices injects ready-made services.
func SetServices(wordFrequency driving.WordFrequencyService, settings driving.SettingsService) {
	wordFrequencyService = wordFrequency
	settingsService = settings
}

// SetServiceFactory registers the constructor used when no services were injected.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root returns the root command so callers can execute it with a context.
func Root() *cobra.Command {
	return rootCmd
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if wordFrequencyService != nil && settingsService != nil {
		return nil
	}
	if serviceFactory == nil {
		return nil
	}

	wf, settings, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialise services: %w", err)
	}
	SetServices(wf, settings)
	return nil
}

func runWordFrequency(cmd *cobra.Command, _ []string) error {
	if wordFrequencyService == nil || settingsService == nil {
		return errors.New("word frequency service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	opts := promptOptions(out, bufio.NewReader(cmd.InOrStdin()), settings.Report.DefaultLimit)

	report, err := wordFrequencyService.Analyse(cmd.Context(), opts)
	if err != nil {
		return err
	}

	return renderTable(out, report.Rows, isTerminal(out))
}
