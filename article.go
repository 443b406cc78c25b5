package coincidence

import (
	"context"

	"github.com/cespare/xxhash/v2"
)

// Article represents one Wikipedia article reduced to plain text.
type Article struct {
	// Title is the article title, as it appears in the article URL.
	Title string

	// Text is the article body with markup still present; callers strip
	// it with StripMarkup before comparing texts.
	Text string
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Text == "" {
		return Errorf(EINVALID, "article text required")
	}
	return nil
}

// Fingerprint returns a hash of the article text. Two random draws can
// land on the same article; comparing fingerprints is how callers notice
// and redraw.
func (a *Article) Fingerprint() uint64 {
	return xxhash.Sum64String(a.Text)
}

// ArticleSource retrieves articles from a remote source.
type ArticleSource interface {
	// Random retrieves a randomly chosen article.
	// The context controls timeout and cancellation.
	Random(ctx context.Context) (*Article, error)

	// ByTitle retrieves the article with the given title.
	// Returns ENOTFOUND if no such article exists.
	ByTitle(ctx context.Context, title string) (*Article, error)
}
