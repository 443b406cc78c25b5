package mock

import (
	"context"

	"github.com/mkohler/coincidence"
)

var _ coincidence.ArticleSource = (*ArticleSource)(nil)

// ArticleSource is a mock implementation of coincidence.ArticleSource.
type ArticleSource struct {
	RandomFn  func(ctx context.Context) (*coincidence.Article, error)
	ByTitleFn func(ctx context.Context, title string) (*coincidence.Article, error)
}

func (s *ArticleSource) Random(ctx context.Context) (*coincidence.Article, error) {
	return s.RandomFn(ctx)
}

func (s *ArticleSource) ByTitle(ctx context.Context, title string) (*coincidence.Article, error) {
	return s.ByTitleFn(ctx, title)
}
