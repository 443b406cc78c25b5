package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/mkohler/coincidence"
	"golang.org/x/time/rate"
)

// Ensure Source implements coincidence.ArticleSource at compile time.
var _ coincidence.ArticleSource = (*Source)(nil)

// Source retrieves articles through Wikipedia's Special:Export endpoint,
// which returns the article wikitext with less of the boilerplate that
// surrounds a rendered page. Random draws go through Special:Random,
// which redirects to a random article; the redirected URL's last path
// segment is the article title.
type Source struct {
	client    *http.Client
	limiter   *rate.Limiter
	baseURL   string
	userAgent string
}

// NewSource creates a new export-based Source.
func NewSource(opts ...Option) *Source {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Source{
		client:    &http.Client{Timeout: cfg.timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.rps), 1),
		baseURL:   cfg.baseURL,
		userAgent: cfg.userAgent,
	}
}

// Random retrieves a randomly chosen article. It resolves the
// Special:Random redirect for a title, then fetches the article itself
// via ByTitle.
func (s *Source) Random(ctx context.Context) (*coincidence.Article, error) {
	resp, err := get(ctx, s.client, s.limiter, s.userAgent, s.baseURL+"/Special:Random")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, coincidence.Errorf(coincidence.EUNAVAILABLE, "HTTP %d resolving a random article", resp.StatusCode)
	}

	title := lastPathSegment(resp.Request.URL)
	if title == "" || title == "Special:Random" {
		return nil, coincidence.Errorf(coincidence.EINTERNAL, "random redirect did not resolve to an article")
	}

	return s.ByTitle(ctx, title)
}

// ByTitle retrieves the article with the given title from the export
// endpoint. Returns ENOTFOUND if the export contains no article text.
func (s *Source) ByTitle(ctx context.Context, title string) (*coincidence.Article, error) {
	if title == "" {
		return nil, coincidence.Errorf(coincidence.EINVALID, "article title required")
	}

	resp, err := get(ctx, s.client, s.limiter, s.userAgent, s.baseURL+"/Special:Export/"+url.PathEscape(title))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, coincidence.Errorf(coincidence.EUNAVAILABLE, "HTTP %d for article %q", resp.StatusCode, title)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, coincidence.Errorf(coincidence.EINVALID, "malformed export XML for %q: %v", title, err)
	}

	text := exportText(doc)
	if text == "" {
		return nil, coincidence.Errorf(coincidence.ENOTFOUND, "no text found for article %q", title)
	}

	return &coincidence.Article{Title: title, Text: text}, nil
}

// exportText returns the text of the first element in the export document
// whose tag ends in "text". The export schema nests the wikitext under
// page/revision, but matching on the tag suffix survives schema version
// bumps.
func exportText(doc *etree.Document) string {
	root := doc.Root()
	if root == nil {
		return ""
	}
	el := findTextElement(root)
	if el == nil {
		return ""
	}
	return el.Text()
}

func findTextElement(el *etree.Element) *etree.Element {
	if strings.HasSuffix(el.Tag, "text") {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := findTextElement(child); found != nil {
			return found
		}
	}
	return nil
}

// lastPathSegment returns the final segment of a URL path, the part
// Wikipedia redirects use to carry the article title.
func lastPathSegment(u *url.URL) string {
	path := strings.TrimSuffix(u.Path, "/")
	return path[strings.LastIndex(path, "/")+1:]
}
