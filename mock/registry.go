package mock

import "github.com/fwojciec/docconv"

var _ docconv.ConverterRegistry = (*ConverterRegistry)(nil)

// ConverterRegistry is a mock implementation of docconv.ConverterRegistry.
type ConverterRegistry struct {
	RegisterFn func(source, target string, factory docconv.ConverterFactory)
	ResolveFn  func(source, target string) (docconv.Converter, error)
	ListFn     func() []docconv.FormatPair
}

func (r *ConverterRegistry) Register(source, target string, factory docconv.ConverterFactory) {
	r.RegisterFn(source, target, factory)
}

func (r *ConverterRegistry) Resolve(source, target string) (docconv.Converter, error) {
	return r.ResolveFn(source, target)
}

func (r *ConverterRegistry) List() []docconv.FormatPair {
	return r.ListFn()
}
