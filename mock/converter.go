package mock

import "github.com/mkohler/coincidence"

var _ coincidence.Converter = (*Converter)(nil)

// Converter is a mock implementation of coincidence.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
