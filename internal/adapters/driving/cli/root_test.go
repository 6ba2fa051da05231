package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiwords/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wikiwords/internal/core/domain"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driving"
	"github.com/custodia-labs/wikiwords/internal/core/services"
	"github.com/custodia-labs/wikiwords/internal/logger"
)

// mockWordFrequencyService implements driving.WordFrequencyService for testing.
type mockWordFrequencyService struct {
	report  *domain.Report
	err     error
	gotOpts driving.AnalyseOptions
	calls   int
}

func (m *mockWordFrequencyService) Analyse(_ context.Context, opts driving.AnalyseOptions) (*domain.Report, error) {
	m.calls++
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

// setupTestServices installs mock services and returns a cleanup function.
func setupTestServices() (*mockWordFrequencyService, func()) {
	mock := &mockWordFrequencyService{
		report: &domain.Report{
			Rows: []domain.WordCount{
				{Word: "Microsoft", Count: 5},
				{Word: "company", Count: 3},
			},
		},
	}
	SetServices(mock, services.NewSettingsService(memory.NewConfigStore()))

	return mock, func() {
		SetServices(nil, nil)
		SetServiceFactory(nil)
		verbose = false
		configDir = ""
		logger.SetVerbose(false)
	}
}

func executeRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	// A nil slice would make cobra read os.Args.
	rootCmd.SetArgs(append([]string{}, args...))
	defer rootCmd.SetIn(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "wikiwords", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "History")
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
}

func TestRootCmd_PromptsAndPrintsTable(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeRoot(t, "5\nthe,of\n")

	require.NoError(t, err)
	want := "Enter the number of words you want to return (Default is 10): " +
		"Enter the words you would like to exclude. Separated by a comma:\n" +
		"\n" +
		"__________________________________________\n" +
		"| Words               | # of occurrences |\n" +
		"|_____________________|__________________|\n" +
		"| Microsoft           | 5                |\n" +
		"| company             | 3                |\n" +
		"|_____________________|__________________|\n"
	assert.Equal(t, want, out)
	assert.Equal(t, 5, mock.gotOpts.Limit)
	assert.Equal(t, domain.Exclusions{"the", "of"}, mock.gotOpts.Exclusions)
}

func TestRootCmd_DefaultsOnEmptyInput(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeRoot(t, "")

	require.NoError(t, err)
	assert.Equal(t, 10, mock.gotOpts.Limit)
	assert.Empty(t, mock.gotOpts.Exclusions)
}

func TestRootCmd_NonNumericLimitKeepsDefault(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeRoot(t, "lots\n\n")

	require.NoError(t, err)
	assert.Equal(t, 10, mock.gotOpts.Limit)
	assert.Nil(t, mock.gotOpts.Exclusions)
}

func TestRootCmd_ConfiguredDefaultLimit(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	store := memory.NewConfigStore()
	_ = store.Set("report.default_limit", 4)
	SetServices(mock, services.NewSettingsService(store))

	out, err := executeRoot(t, "\n\n")

	require.NoError(t, err)
	assert.Contains(t, out, "(Default is 4): ")
	assert.Equal(t, 4, mock.gotOpts.Limit)
}

func TestRootCmd_AnalyseError(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	mock.err = domain.ErrSectionNotFound

	out, err := executeRoot(t, "\n\n")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSectionNotFound))
	assert.NotContains(t, out, tableHeader)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeRoot(t, "", "unexpected")

	assert.Error(t, err)
}

func TestRootCmd_NotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	cleanup()

	_, err := executeRoot(t, "\n\n")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestRootCmd_UsesServiceFactory(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil, nil)

	var gotDir string
	SetServiceFactory(func(dir string) (driving.WordFrequencyService, driving.SettingsService, error) {
		gotDir = dir
		return mock, services.NewSettingsService(memory.NewConfigStore()), nil
	})

	_, err := executeRoot(t, "2\n\n", "--config-dir", "/tmp/wikiwords-test")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/wikiwords-test", gotDir)
	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, 2, mock.gotOpts.Limit)
}

func TestRootCmd_ServiceFactoryError(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	SetServices(nil, nil)
	SetServiceFactory(func(string) (driving.WordFrequencyService, driving.SettingsService, error) {
		return nil, nil, errors.New("bad config")
	})

	_, err := executeRoot(t, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialise services: bad config")
}

func TestRootCmd_VerboseFlagEnablesLogger(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeRoot(t, "\n\n", "--verbose")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}
