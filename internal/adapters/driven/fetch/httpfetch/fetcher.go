package httpfetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/wikiwords/internal/core/domain"
	"github.com/custodia-labs/wikiwords/internal/core/ports/driven"
	"github.com/custodia-labs/wikiwords/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBodySize caps how much of a response is read (20 MiB).
	DefaultMaxBodySize = 20 << 20
)

// Config configures a Fetcher.
type Config struct {
	// Timeout bounds the request including the body read. Zero means DefaultTimeout.
	Timeout time.Duration

	// UserAgent is sent on every request. Empty leaves Go's default.
	UserAgent string

	// RequestsPerSecond paces requests. Zero or negative disables pacing.
	RequestsPerSecond float64

	// MaxBodySize is the largest body accepted. Zero means DefaultMaxBodySize.
	MaxBodySize int64
}

// Fetcher retrieves pages with a single paced GET.
type Fetcher struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	maxBody   int64
}

// New creates a Fetcher with its own HTTP client.
func New(cfg Config) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewWithClient(&http.Client{Timeout: timeout}, cfg)
}

// NewWithClient creates a Fetcher around an existing client.
// The client's own timeout is left untouched.
func NewWithClient(client *http.Client, cfg Config) *Fetcher {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	maxBody := cfg.MaxBodySize
	if maxBody <= 0 {
		maxBody = DefaultMaxBodySize
	}

	return &Fetcher{
		client:    client,
		limiter:   rate.NewLimiter(limit, 1),
		userAgent: cfg.UserAgent,
		maxBody:   maxBody,
	}
}

// Fetch performs a GET on url and returns the body as UTF-8 text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: wait for rate limiter: %w", domain.ErrFetchFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", domain.ErrFetchFailed, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	logger.Debug("GET %s", url)
	start := time.Now()

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", domain.ErrUnexpectedStatus, resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", domain.ErrFetchFailed, err)
	}
	if int64(len(raw)) > f.maxBody {
		return "", fmt.Errorf("%w: more than %d bytes", domain.ErrBodyTooLarge, f.maxBody)
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := decode(raw, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: decode body: %w", domain.ErrFetchFailed, err)
	}

	logger.Debug("%s %d bytes (%s) in %v", resp.Status, len(raw), contentType, time.Since(start))
	return body, nil
}

// decode converts raw to UTF-8 using the Content-Type charset,
// falling back to <meta> sniffing and then UTF-8.
func decode(raw []byte, contentType string) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return "", err
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
