package driving

import (
	"context"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
)

// AnalyseOptions holds the user's choices for one run.
type AnalyseOptions struct {
	// Limit is the maximum number of rows in the report.
	Limit int

	// Exclusions are words to leave out of the report.
	Exclusions domain.Exclusions
}

// WordFrequencyService reports the most frequent words of an article section.
type WordFrequencyService interface {
	// Analyse fetches the configured article and ranks the words of its section.
	Analyse(ctx context.Context, opts AnalyseOptions) (*domain.Report, error)
}
