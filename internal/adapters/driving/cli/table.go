package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
)

const (
	wordColumnWidth  = 20
	countColumnWidth = 17

	tableTop    = "__________________________________________"
	tableHeader = "| Words               | # of occurrences |"
	tableRule   = "|_____________________|__________________|"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// renderTable writes rows as a bordered two-column table.
// Words longer than the column overflow it rather than being cut.
func renderTable(w io.Writer, rows []domain.WordCount, styled bool) error {
	header := tableHeader
	if styled {
		header = headerStyle.Render(tableHeader)
	}

	var sb strings.Builder
	sb.WriteString(tableTop + "\n")
	sb.WriteString(header + "\n")
	sb.WriteString(tableRule + "\n")
	for _, row := range rows {
		sb.WriteString("| ")
		sb.WriteString(padRight(row.Word, wordColumnWidth))
		sb.WriteString("| ")
		sb.WriteString(padRight(strconv.Itoa(row.Count), countColumnWidth))
		sb.WriteString("|\n")
	}
	sb.WriteString(tableRule + "\n")

	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// padRight pads s with spaces to width display cells. A wide rune such as
// 東 counts as two cells, so columns stay aligned on a terminal.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// isTerminal reports whether w is a terminal, enabling styled output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
