package convert

import (
	"context"

	"github.com/fwojciec/docconv"
	"github.com/fwojciec/docconv/builtin"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds ConvertBatch when no option overrides it.
const defaultConcurrency = 4

var (
	_ docconv.ConversionService = (*System)(nil)
	_ docconv.ConverterRegistry = (*System)(nil)
)

// System is the conversion facade. It owns a registry that holds the
// built-in converters from construction onwards.
type System struct {
	registry    docconv.ConverterRegistry
	concurrency int
}

// Option configures a System.
type Option func(*System)

// WithRegistry makes the System dispatch through r instead of a new Registry.
// Built-in converters are registered into r.
func WithRegistry(r docconv.ConverterRegistry) Option {
	return func(s *System) {
		s.registry = r
	}
}

// WithConcurrency sets how many batch conversions run at once.
// Values below one are ignored.
func WithConcurrency(n int) Option {
	return func(s *System) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewSystem creates a System and registers the built-in converters.
func NewSystem(opts ...Option) *System {
	s := &System{
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = NewRegistry()
	}

	builtin.Register(s.registry)

	return s
}

// Register adds a factory to the underlying registry.
func (s *System) Register(source, target string, factory docconv.ConverterFactory) {
	s.registry.Register(source, target, factory)
}

// Resolve returns a new converter from the underlying registry.
func (s *System) Resolve(source, target string) (docconv.Converter, error) {
	return s.registry.Resolve(source, target)
}

// List returns the pairs registered in the underlying registry.
func (s *System) List() []docconv.FormatPair {
	return s.registry.List()
}

// Convert resolves a converter for the pair and applies it to content.
// Resolve errors are returned unchanged.
func (s *System) Convert(content, source, target string) (string, error) {
	conv, err := s.registry.Resolve(source, target)
	if err != nil {
		return "", err
	}
	return conv.Convert(content)
}

// ConvertBatch converts reqs concurrently. Results are in request order and
// carry their own errors; the returned error is only set when ctx is done
// before all requests have run.
func (s *System) ConvertBatch(ctx context.Context, reqs []docconv.ConversionRequest) ([]docconv.ConversionResult, error) {
	results := make([]docconv.ConversionResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := s.Convert(req.Content, req.Source, req.Target)
			results[i] = docconv.ConversionResult{Output: out, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
