package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
)

func TestRenderTable_Scenario(t *testing.T) {
	buf := new(bytes.Buffer)

	err := renderTable(buf, []domain.WordCount{{Word: "company", Count: 3}}, false)

	require.NoError(t, err)
	assert.Equal(t,
		"__________________________________________\n"+
			"| Words               | # of occurrences |\n"+
			"|_____________________|__________________|\n"+
			"| company             | 3                |\n"+
			"|_____________________|__________________|\n",
		buf.String())
}

func TestRenderTable_Empty(t *testing.T) {
	buf := new(bytes.Buffer)

	require.NoError(t, renderTable(buf, nil, false))

	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
}

func TestRenderTable_FixedWidth(t *testing.T) {
	buf := new(bytes.Buffer)
	rows := []domain.WordCount{
		{Word: "a", Count: 1},
		{Word: "Microsoft's", Count: 123},
		{Word: "exactlytwentychars!!", Count: 7},
	}

	require.NoError(t, renderTable(buf, rows, false))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Len(t, line, 42, "line %q", line)
	}
}

func TestRenderTable_LongWordOverflows(t *testing.T) {
	buf := new(bytes.Buffer)
	rows := []domain.WordCount{{Word: "Microsoft-Intel-IBM-alliance", Count: 2}}

	require.NoError(t, renderTable(buf, rows, false))

	assert.Contains(t, buf.String(), "| Microsoft-Intel-IBM-alliance| 2                |\n")
}

func TestRenderTable_Styled(t *testing.T) {
	buf := new(bytes.Buffer)

	require.NoError(t, renderTable(buf, []domain.WordCount{{Word: "x", Count: 1}}, true))

	assert.Contains(t, buf.String(), "Words")
	assert.Contains(t, buf.String(), "| x                   | 1                |\n")
}

func TestRenderTable_WriteError(t *testing.T) {
	err := renderTable(failingWriter{}, nil, false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write table")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 5))
	assert.Equal(t, "café ", padRight("café", 5))
}

func TestPadRight_WideCharactersUseDisplayWidth(t *testing.T) {
	assert.Equal(t, "日本 ", padRight("日本", 5))
	assert.Equal(t, "日本語", padRight("日本語", 5))
}

func TestRenderTable_WideCharactersKeepColumnsAligned(t *testing.T) {
	buf := new(bytes.Buffer)

	require.NoError(t, renderTable(buf, []domain.WordCount{{Word: "東京", Count: 4}}, false))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "| 東京                | 4                |", lines[3])
	for _, line := range lines {
		assert.Equal(t, 42, lipgloss.Width(line), "line %q", line)
	}
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, isTerminal(new(bytes.Buffer)))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}
