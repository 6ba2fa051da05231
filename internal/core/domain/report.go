package domain

import "time"

// Report is the outcome of analysing one article section.
type Report struct {
	// ID identifies the run in verbose logs.
	ID string

	// URL is the article that was fetched.
	URL string

	// StartSection and EndSection name the headings bounding the analysed text.
	StartSection string
	EndSection   string

	// Rows holds the ranked words, excluded words already removed.
	Rows []WordCount

	// Tokens is the number of retained tokens (sum of all counts).
	Tokens int

	// DistinctWords is the number of keys in the frequency table.
	DistinctWords int

	// GeneratedAt is when the report was produced.
	GeneratedAt time.Time
}
