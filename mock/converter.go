package mock

import "github.com/fwojciec/helpview"

var _ helpview.Converter = (*Converter)(nil)

// Converter is a mock implementation of helpview.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
