package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rcrowley/go-metrics"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driven"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driving"
	"github.com/custodia-labs/wikiwords/internal/logger"
	"github.com/custodia-labs/wikiwords/internal/wordfreq"
)

// Ensure WordFrequencyService implements the interface.
var _ driving.WordFrequencyService = (*WordFrequencyService)(nil)

// Metric names recorded for every run.
const (
	MetricFetch           = "fetch"
	MetricExtract         = "extract"
	MetricCount           = "count"
	MetricTokensRetained  = "tokens.retained"
	MetricTokensDiscarded = "tokens.discarded"
	MetricDistinctWords   = "words.distinct"
)

// WordFrequencyService runs the fetch, extract, sanitize, count and rank
// pipeline for the configured article.
type WordFrequencyService struct {
	settings  driving.SettingsService
	fetcher   driven.PageFetcher
	extractor driven.SectionExtractor
	registry  metrics.Registry
	now       func() time.Time
}

// NewWordFrequencyService creates a new word frequency service.
func NewWordFrequencyService(
	settings driving.SettingsService,
	fetcher driven.PageFetcher,
	extractor driven.SectionExtractor,
) *WordFrequencyService {
	return &WordFrequencyService{
		settings:  settings,
		fetcher:   fetcher,
		extractor: extractor,
		registry:  metrics.NewRegistry(),
		now:       time.Now,
	}
}

// Metrics returns the registry holding stage timings and token counters.
func (s *WordFrequencyService) Metrics() metrics.Registry {
	return s.registry
}

// Analyse fetches the article, extracts the configured section and returns
// the opts.Limit most frequent words not listed in opts.Exclusions.
func (s *WordFrequencyService) Analyse(ctx context.Context, opts driving.AnalyseOptions) (*domain.Report, error) {
	if err := s.settings.Validate(); err != nil {
		return nil, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	runID := uuid.New().String()
	article := settings.Article
	logger.Section("Word Frequency")
	logger.Info("Run %s: %s [%s..%s)", runID, article.URL, article.StartSection, article.EndSection)
	logger.Debug("Limit: %d, Exclusions: %q", opts.Limit, []string(opts.Exclusions))

	start := s.now()
	document, err := s.fetcher.Fetch(ctx, article.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", article.URL, err)
	}
	metrics.GetOrRegisterTimer(MetricFetch, s.registry).UpdateSince(start)

	start = s.now()
	paragraphs, err := s.extractor.Paragraphs(document, driven.SectionBounds{
		Start: article.StartSection,
		End:   article.EndSection,
	})
	if err != nil {
		return nil, fmt.Errorf("extract section: %w", err)
	}
	metrics.GetOrRegisterTimer(MetricExtract, s.registry).UpdateSince(start)

	start = s.now()
	table, stats := wordfreq.Count(wordfreq.Sanitize(paragraphs))
	ranked := wordfreq.Rank(table)
	rows := wordfreq.Top(ranked, opts.Limit, opts.Exclusions)
	metrics.GetOrRegisterTimer(MetricCount, s.registry).UpdateSince(start)

	metrics.GetOrRegisterCounter(MetricTokensRetained, s.registry).Inc(int64(stats.Retained))
	metrics.GetOrRegisterCounter(MetricTokensDiscarded, s.registry).Inc(int64(stats.Discarded))
	metrics.GetOrRegisterGauge(MetricDistinctWords, s.registry).Update(int64(table.Len()))
	s.logMetrics()

	return &domain.Report{
		ID:            runID,
		URL:           article.URL,
		StartSection:  article.StartSection,
		EndSection:    article.EndSection,
		Rows:          rows,
		Tokens:        table.Total(),
		DistinctWords: table.Len(),
		GeneratedAt:   s.now(),
	}, nil
}

// logMetrics prints the registry in verbose mode.
func (s *WordFrequencyService) logMetrics() {
	if !logger.IsVerbose() {
		return
	}
	s.registry.Each(func(name string, m any) {
		switch v := m.(type) {
		case metrics.Timer:
			logger.Debug("%s: %v", name, time.Duration(v.Max()))
		case metrics.Counter:
			logger.Debug("%s: %d", name, v.Count())
		case metrics.Gauge:
			logger.Debug("%s: %d", name, v.Value())
		}
	})
}
