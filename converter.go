package docconv

import "context"

// Converter transforms document content from one format to another.
type Converter interface {
	// Convert transforms content from the converter's source format
	// into its target format. Any string, including the empty string,
	// is accepted as input.
	Convert(content string) (string, error)
}

// ConverterFactory constructs a fresh Converter. Registries call it once
// per resolve.
type ConverterFactory func() Converter

// ConverterRegistry maps format pairs to converter factories.
type ConverterRegistry interface {
	// Register adds a factory for the source to target conversion.
	// Format names are matched case-insensitively. An existing factory
	// for the same pair is replaced.
	Register(source, target string, factory ConverterFactory)

	// Resolve returns a new converter for the source to target conversion.
	// Returns *UnsupportedConversionError if no factory is registered.
	Resolve(source, target string) (Converter, error)

	// List returns all registered pairs sorted by key.
	List() []FormatPair
}

// ConversionRequest describes a single conversion in a batch.
type ConversionRequest struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Target  string `json:"target"`
}

// ConversionResult holds the outcome of a single batch conversion.
type ConversionResult struct {
	Output string `json:"output"`
	Err    error  `json:"-"`
}

// ConversionService converts documents between formats.
type ConversionService interface {
	// Convert converts content from the source format to the target format.
	Convert(content, source, target string) (string, error)

	// ConvertBatch converts every request, returning results in request order.
	// Per-request failures are reported in ConversionResult.Err.
	ConvertBatch(ctx context.Context, reqs []ConversionRequest) ([]ConversionResult, error)
}
