package wordfreq

import (
	"slices"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
)

// Rank orders the table by descending count.
// Words with equal counts keep the order in which they first appeared.
func Rank(table *domain.FrequencyTable) []domain.WordCount {
	ranked := table.Entries()
	slices.SortStableFunc(ranked, func(a, b domain.WordCount) int {
		return b.Count - a.Count
	})
	return ranked
}

// Top walks ranked rows, skipping excluded words, and stops once n rows
// have been kept. A non-positive n yields no rows.
func Top(ranked []domain.WordCount, n int, exclusions domain.Exclusions) []domain.WordCount {
	if n <= 0 {
		return nil
	}

	rows := make([]domain.WordCount, 0, min(n, len(ranked)))
	for _, wc := range ranked {
		if len(rows) >= n {
			break
		}
		if exclusions.Contains(wc.Word) {
			continue
		}
		rows = append(rows, wc)
	}
	return rows
}
