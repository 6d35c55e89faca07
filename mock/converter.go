package mock

import "github.com/fwojciec/docconv"

var _ docconv.Converter = (*Converter)(nil)

// Converter is a mock implementation of docconv.Converter.
type Converter struct {
	ConvertFn func(content string) (string, error)
}

func (c *Converter) Convert(content string) (string, error) {
	return c.ConvertFn(content)
}
