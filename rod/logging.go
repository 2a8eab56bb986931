package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescribe"
)

// Ensure LoggingFetcher implements pagescribe.Fetcher.
var _ pagescribe.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   pagescribe.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagescribe.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingRasterizer implements pagescribe.Rasterizer.
var _ pagescribe.Rasterizer = (*LoggingRasterizer)(nil)

// LoggingRasterizer wraps a Rasterizer with debug logging.
type LoggingRasterizer struct {
	next   pagescribe.Rasterizer
	logger *slog.Logger
}

// NewLoggingRasterizer creates a new LoggingRasterizer.
func NewLoggingRasterizer(next pagescribe.Rasterizer, logger *slog.Logger) *LoggingRasterizer {
	return &LoggingRasterizer{next: next, logger: logger}
}

// Rasterize logs the output target and delegates to the wrapped rasterizer.
func (r *LoggingRasterizer) Rasterize(ctx context.Context, doc *pagescribe.ContentDocument, outPath string, opts pagescribe.PageOptions) (err error) {
	defer func(begin time.Time) {
		r.logger.Info("rasterize",
			"url", doc.Metadata.SourceURL,
			"out", outPath,
			"size", string(opts.Size),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Rasterize(ctx, doc, outPath, opts)
}

// Close delegates to the wrapped rasterizer.
func (r *LoggingRasterizer) Close() error {
	return r.next.Close()
}
