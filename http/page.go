package http

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/mkohler/coincidence"
	"golang.org/x/time/rate"
)

// Ensure PageSource implements coincidence.ArticleSource at compile time.
var _ coincidence.ArticleSource = (*PageSource)(nil)

// PageSource retrieves articles from rendered Wikipedia pages instead of
// the XML export. It fetches the page HTML, extracts the article body,
// and converts it to Markdown text. Useful when the export endpoint is
// unavailable or the rendered text is preferred.
type PageSource struct {
	client    *http.Client
	limiter   *rate.Limiter
	baseURL   string
	userAgent string
	extractor coincidence.TextExtractor
	converter coincidence.Converter
}

// NewPageSource creates a PageSource that extracts article text with the
// given extractor and converter.
func NewPageSource(extractor coincidence.TextExtractor, converter coincidence.Converter, opts ...Option) *PageSource {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PageSource{
		client:    &http.Client{Timeout: cfg.timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.rps), 1),
		baseURL:   cfg.baseURL,
		userAgent: cfg.userAgent,
		extractor: extractor,
		converter: converter,
	}
}

// Random retrieves a randomly chosen article. Special:Random redirects
// straight to a rendered article page, so a single request yields both
// the title and the body.
func (s *PageSource) Random(ctx context.Context) (*coincidence.Article, error) {
	return s.fetch(ctx, s.baseURL+"/Special:Random", "")
}

// ByTitle retrieves the rendered page for the given title.
func (s *PageSource) ByTitle(ctx context.Context, title string) (*coincidence.Article, error) {
	if title == "" {
		return nil, coincidence.Errorf(coincidence.EINVALID, "article title required")
	}
	return s.fetch(ctx, s.baseURL+"/"+url.PathEscape(title), title)
}

// fetch downloads a page and runs it through the extract/convert
// pipeline. When title is empty it is taken from the final URL after
// redirects.
func (s *PageSource) fetch(ctx context.Context, pageURL, title string) (*coincidence.Article, error) {
	resp, err := get(ctx, s.client, s.limiter, s.userAgent, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, coincidence.Errorf(coincidence.ENOTFOUND, "article %q not found", title)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, coincidence.Errorf(coincidence.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, coincidence.Errorf(coincidence.EUNAVAILABLE, "reading page body: %v", err)
	}

	result, err := s.extractor.Extract(string(body))
	if err != nil {
		return nil, err
	}

	text, err := s.converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = lastPathSegment(resp.Request.URL)
	}
	if result.Title != "" {
		title = result.Title
	}

	article := &coincidence.Article{Title: title, Text: text}
	if err := article.Validate(); err != nil {
		return nil, coincidence.Errorf(coincidence.ENOTFOUND, "no article content at %s", pageURL)
	}
	return article, nil
}
