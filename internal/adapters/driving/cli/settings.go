package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Show the article, section and fetch settings used for a run.

Settings are read from config.toml in the config directory. Missing
values fall back to the built-in defaults. Use "settings set" to change
a value and "settings reset" to write the defaults back.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if settingsService == nil {
			return errors.New("settings service not configured")
		}
		cmd.Println(settingsService.Path())
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change one setting and save it to the config file.

Keys:
  article.url                 article to fetch (absolute http(s) URL)
  article.start_section       id of the heading that opens the section
  article.end_section         id of the heading that closes the section
  report.default_limit        rows shown when no number is entered
  fetch.timeout_seconds       HTTP timeout
  fetch.user_agent            User-Agent header
  fetch.requests_per_second   request pacing`,
	Example: "  wikiwords settings set article.url https://en.wikipedia.org/wiki/IBM",
	Args:    cobra.ExactArgs(2),
	RunE:    runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Article]")
	cmd.Printf("  URL: %s\n", settings.Article.URL)
	cmd.Printf("  Start section: %s\n", settings.Article.StartSection)
	cmd.Printf("  End section: %s\n", settings.Article.EndSection)
	cmd.Println()

	cmd.Println("[Report]")
	cmd.Printf("  Default limit: %d\n", settings.Report.DefaultLimit)
	cmd.Println()

	cmd.Println("[Fetch]")
	cmd.Printf("  Timeout: %s\n", settings.Fetch.Timeout)
	cmd.Printf("  User agent: %s\n", settings.Fetch.UserAgent)
	cmd.Printf("  Requests per second: %g\n", settings.Fetch.RequestsPerSecond)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}
	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w (keys: %s)", key, err, strings.Join(settingsService.Keys(), ", "))
	}

	cmd.Printf("%s set to %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Printf("Settings reset to defaults in %s\n", settingsService.Path())
	return nil
}
