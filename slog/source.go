// Package slog provides logging decorators for coincidence services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkohler/coincidence"
)

// Ensure Source implements coincidence.ArticleSource.
var _ coincidence.ArticleSource = (*Source)(nil)

// Source wraps an ArticleSource with structured logging of fetches.
type Source struct {
	next   coincidence.ArticleSource
	logger *slog.Logger
}

// NewSource creates a new logging Source.
func NewSource(next coincidence.ArticleSource, logger *slog.Logger) *Source {
	return &Source{next: next, logger: logger}
}

// Random delegates to the wrapped source and logs the outcome.
func (s *Source) Random(ctx context.Context) (*coincidence.Article, error) {
	begin := time.Now()
	article, err := s.next.Random(ctx)
	if err != nil {
		s.logger.Error("random article fetch failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("fetched random article",
		"title", article.Title,
		"chars", len(article.Text),
		"duration", time.Since(begin),
	)
	return article, nil
}

// ByTitle delegates to the wrapped source and logs the outcome.
func (s *Source) ByTitle(ctx context.Context, title string) (*coincidence.Article, error) {
	begin := time.Now()
	article, err := s.next.ByTitle(ctx, title)
	if err != nil {
		s.logger.Error("article fetch failed",
			"title", title,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("fetched article",
		"title", article.Title,
		"chars", len(article.Text),
		"duration", time.Since(begin),
	)
	return article, nil
}
