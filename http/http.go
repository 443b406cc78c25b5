// Package http provides HTTP-backed implementations of
// coincidence.ArticleSource against Wikipedia's endpoints: Source reads
// the Special:Export XML, PageSource reads rendered article pages.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mkohler/coincidence"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies this tool to Wikipedia. Wikipedia rejects
// the Go default user agent to discourage crawlers.
const DefaultUserAgent = "coincidence/1.0"

// DefaultRequestsPerSecond is the polite request rate against a single
// Wikipedia host.
const DefaultRequestsPerSecond = 1.0

// config carries the settings shared by Source and PageSource.
type config struct {
	timeout   time.Duration
	userAgent string
	baseURL   string
	rps       float64
}

func defaultConfig() config {
	return config{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		baseURL:   "https://en.wikipedia.org/wiki",
		rps:       DefaultRequestsPerSecond,
	}
}

// Option configures a Source or PageSource.
type Option func(*config)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithLanguage points the source at a Wikipedia language edition,
// e.g. "de" for de.wikipedia.org. Defaults to "en".
func WithLanguage(lang string) Option {
	return func(c *config) {
		c.baseURL = fmt.Sprintf("https://%s.wikipedia.org/wiki", lang)
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithBaseURL replaces the full endpoint prefix, overriding WithLanguage.
// Used by tests to point a source at a local server.
func WithBaseURL(u string) Option {
	return func(c *config) {
		c.baseURL = u
	}
}

// WithRequestsPerSecond changes the request rate limit.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *config) {
		c.rps = rps
	}
}

// get issues a rate-limited GET with the configured User-Agent. Redirects
// are followed; the caller inspects resp.Request.URL for the final URL.
func get(ctx context.Context, client *http.Client, limiter *rate.Limiter, userAgent, url string) (*http.Response, error) {
	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, coincidence.Errorf(coincidence.EUNAVAILABLE, "wikipedia unreachable: %v", err)
	}
	return resp, nil
}
