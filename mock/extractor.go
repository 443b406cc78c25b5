package mock

import "github.com/mkohler/coincidence"

var _ coincidence.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of coincidence.TextExtractor.
type TextExtractor struct {
	ExtractFn func(html string) (*coincidence.ExtractResult, error)
}

func (e *TextExtractor) Extract(html string) (*coincidence.ExtractResult, error) {
	return e.ExtractFn(html)
}
