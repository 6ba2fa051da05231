package wordfreq

import (
	"strings"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
)

// Stats describes how the tokens of a text were treated.
type Stats struct {
	// Retained is the number of tokens added to the table.
	Retained int

	// Discarded is the number of tokens without a letter, empty ones included.
	Discarded int
}

// Tokenize splits sanitized text on the space character, trims each piece
// and returns the pieces that contain at least one ASCII letter.
func Tokenize(text string) []string {
	var tokens []string
	for _, piece := range strings.Split(text, " ") {
		if tok, ok := token(piece); ok {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Count tallies the tokens of sanitized text into a frequency table.
// Keys are case sensitive: "Microsoft" and "microsoft" are distinct.
func Count(text string) (*domain.FrequencyTable, Stats) {
	table := domain.NewFrequencyTable()
	var stats Stats

	for _, piece := range strings.Split(text, " ") {
		tok, ok := token(piece)
		if !ok {
			stats.Discarded++
			continue
		}
		table.Add(tok)
		stats.Retained++
	}

	return table, stats
}

func token(piece string) (string, bool) {
	tok := strings.TrimSpace(piece)
	return tok, hasLetter(tok)
}

// hasLetter reports whether s contains an ASCII letter.
// Pure numbers such as years are therefore not words.
func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			return true
		}
	}
	return false
}
