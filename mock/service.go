package mock

import (
	"context"

	"github.com/fwojciec/docconv"
)

var _ docconv.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of docconv.ConversionService.
type ConversionService struct {
	ConvertFn      func(content, source, target string) (string, error)
	ConvertBatchFn func(ctx context.Context, reqs []docconv.ConversionRequest) ([]docconv.ConversionResult, error)
}

func (s *ConversionService) Convert(content, source, target string) (string, error) {
	return s.ConvertFn(content, source, target)
}

func (s *ConversionService) ConvertBatch(ctx context.Context, reqs []docconv.ConversionRequest) ([]docconv.ConversionResult, error) {
	return s.ConvertBatchFn(ctx, reqs)
}
