package mock

import (
	"context"

	"github.com/fwojciec/pagescribe"
)

var _ pagescribe.Rasterizer = (*Rasterizer)(nil)

// Rasterizer is a mock implementation of pagescribe.Rasterizer.
type Rasterizer struct {
	RasterizeFn func(ctx context.Context, doc *pagescribe.ContentDocument, outPath string, opts pagescribe.PageOptions) error
	CloseFn     func() error
}

func (r *Rasterizer) Rasterize(ctx context.Context, doc *pagescribe.ContentDocument, outPath string, opts pagescribe.PageOptions) error {
	return r.RasterizeFn(ctx, doc, outPath, opts)
}

func (r *Rasterizer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}
