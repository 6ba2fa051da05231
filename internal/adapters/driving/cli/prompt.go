package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driving"
	"github.com/custodia-labs/wikiwords/internal/logger"
)

const (
	limitPrompt     = "Enter the number of words you want to return (Default is %d): "
	exclusionPrompt = "Enter the words you would like to exclude. Separated by a comma:"
)

// promptOptions asks for the row limit and the exclusion list, then writes
// the blank line that separates the prompts from the report.
func promptOptions(out io.Writer, in *bufio.Reader, defaultLimit int) driving.AnalyseOptions {
	fmt.Fprintf(out, limitPrompt, defaultLimit)
	limit := parseLimit(readLine(in), defaultLimit)

	fmt.Fprintln(out, exclusionPrompt)
	exclusions := parseExclusions(readLine(in))

	fmt.Fprintln(out)

	return driving.AnalyseOptions{
		Limit:      limit,
		Exclusions: exclusions,
	}
}

// readLine reads one line and strips only its terminator.
// End of input yields whatever was read, possibly "".
func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// parseLimit returns the integer in input, or defaultLimit when input is
// not an integer. Surrounding whitespace is allowed.
func parseLimit(input string, defaultLimit int) int {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		if input != "" {
			logger.Warn("%q is not a number, using default of %d", input, defaultLimit)
		}
		return defaultLimit
	}
	return n
}

// parseExclusions splits input on commas without trimming the items, so
// " the" only excludes a token that is literally " the".
func parseExclusions(input string) domain.Exclusions {
	if input == "" {
		return nil
	}
	return domain.Exclusions(strings.Split(input, ","))
}
