// Package slog provides log/slog decorators for pagescribe
// interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagescribe"
)

// Ensure LoggingExtractor implements pagescribe.Extractor.
var _ pagescribe.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging for
// extraction outcomes.
type LoggingExtractor struct {
	next   pagescribe.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagescribe.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the section
// count, title presence, and duration.
func (e *LoggingExtractor) Extract(html string, sourceURL string) (*pagescribe.ContentDocument, error) {
	begin := time.Now()
	doc, err := e.next.Extract(html, sourceURL)

	attrs := []any{
		"url", sourceURL,
		"bytes", len(html),
		"duration", time.Since(begin),
		"err", err,
	}
	if doc != nil {
		attrs = append(attrs,
			"sections", len(doc.Sections),
			"title", doc.Title != "",
			"hash", doc.Hash(),
		)
	}
	e.logger.Info("extract", attrs...)

	return doc, err
}
