package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiwords/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wikiwords/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiwords/internal/core/domain"
	"github.com/custodia-labs/wikiwords/internal/core/services"
)

func TestSettingsCmd_ShowsDefaults(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeRoot(t, "", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "URL: https://en.wikipedia.org/wiki/Microsoft")
	assert.Contains(t, out, "Start section: History")
	assert.Contains(t, out, "End section: Corporate_affairs")
	assert.Contains(t, out, "Default limit: 10")
	assert.Contains(t, out, "Timeout: 30s")
	assert.Contains(t, out, "Config file: :memory:")
	assert.NotContains(t, out, "Warning")
}

func TestSettingsCmd_WarnsOnInvalidSettings(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	store := memory.NewConfigStore()
	_ = store.Set("article.url", "wiki/Microsoft")
	SetServices(mock, services.NewSettingsService(store))

	out, err := executeRoot(t, "", "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning: invalid settings")
}

func TestSettingsPathCmd(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeRoot(t, "", "settings", "path")

	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}

func TestSettingsCmd_NotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	cleanup()

	_, err := executeRoot(t, "", "settings")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

func TestSettingsSetCmd_SavesValue(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	store := memory.NewConfigStore()
	SetServices(mock, services.NewSettingsService(store))

	out, err := executeRoot(t, "", "settings", "set", "report.default_limit", "15")

	require.NoError(t, err)
	assert.Equal(t, "report.default_limit set to 15\n", out)
	assert.Equal(t, 15, store.GetInt("report.default_limit"))

	out, err = executeRoot(t, "\n\n")
	require.NoError(t, err)
	assert.Contains(t, out, "(Default is 15): ")
	assert.Equal(t, 15, mock.gotOpts.Limit)
}

func TestSettingsSetCmd_RejectsUnknownKey(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeRoot(t, "", "settings", "set", "report.colour", "red")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "article.url")
}

func TestSettingsSetCmd_RejectsInvalidURL(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeRoot(t, "", "settings", "set", "article.url", "wiki/Microsoft")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSettings))
}

func TestSettingsSetCmd_RequiresKeyAndValue(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeRoot(t, "", "settings", "set", "article.url")

	assert.Error(t, err)
}

func TestSettingsResetCmd_RestoresDefaults(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	store := memory.NewConfigStore()
	_ = store.Set("article.end_section", "Products")
	_ = store.Set("report.default_limit", 3)
	SetServices(mock, services.NewSettingsService(store))

	out, err := executeRoot(t, "", "settings", "reset")

	require.NoError(t, err)
	assert.Equal(t, "Settings reset to defaults in :memory:\n", out)
	assert.Equal(t, "Corporate_affairs", store.GetString("article.end_section"))
	assert.Equal(t, 10, store.GetInt("report.default_limit"))
	assert.Equal(t, domain.DefaultArticleURL, store.GetString("article.url"))
}

func TestSettingsSetCmd_WritesConfigFile(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	dir := filepath.Join(t.TempDir(), "nested")
	store, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	SetServices(mock, services.NewSettingsService(store))

	_, err = executeRoot(t, "", "settings", "set", "article.start_section", "Products")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[article]")
	assert.Contains(t, string(data), "Products")

	reloaded, err := file.NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "Products", reloaded.GetString("article.start_section"))
}
