// Package slog provides logging decorators for docconv services.
package slog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docconv"
)

// Ensure LoggingConverter implements docconv.Converter.
var _ docconv.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter and logs each conversion.
type LoggingConverter struct {
	next   docconv.Converter
	pair   docconv.FormatPair
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter for the given pair.
func NewLoggingConverter(next docconv.Converter, pair docconv.FormatPair, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, pair: pair, logger: logger}
}

// Convert delegates to the wrapped converter and logs sizes, output hash
// and duration.
func (c *LoggingConverter) Convert(content string) (out string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("conversion",
			"source", string(c.pair.Source),
			"target", string(c.pair.Target),
			"bytes_in", len(content),
			"bytes_out", len(out),
			"hash", computeHash(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(content)
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
