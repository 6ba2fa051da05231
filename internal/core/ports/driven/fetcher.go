package driven

import "context"

// PageFetcher retrieves a web page.
type PageFetcher interface {
	// Fetch performs a single GET and returns the body decoded to UTF-8.
	// Failures are returned, never retried.
	Fetch(ctx context.Context, url string) (string, error)
}
