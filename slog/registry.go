package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docconv"
)

// Ensure LoggingRegistry implements docconv.ConverterRegistry.
var _ docconv.ConverterRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a ConverterRegistry with logging for registration
// and resolution. Resolved converters are wrapped in a LoggingConverter.
type LoggingRegistry struct {
	next   docconv.ConverterRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next docconv.ConverterRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(source, target string, factory docconv.ConverterFactory) {
	r.next.Register(source, target, factory)
	r.logger.Debug("converter registered",
		"key", docconv.NewFormatPair(source, target).Key(),
	)
}

// Resolve delegates to the wrapped registry, logs the outcome, and wraps
// the converter so its conversions are logged too.
func (r *LoggingRegistry) Resolve(source, target string) (docconv.Converter, error) {
	begin := time.Now()
	conv, err := r.next.Resolve(source, target)
	if err != nil {
		r.logger.Warn("converter resolve failed",
			"source", source,
			"target", target,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	r.logger.Debug("converter resolved",
		"source", source,
		"target", target,
		"duration", time.Since(begin),
	)
	return NewLoggingConverter(conv, docconv.NewFormatPair(source, target), r.logger), nil
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []docconv.FormatPair {
	return r.next.List()
}
