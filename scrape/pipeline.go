// Package scrape provides pipeline orchestration: it coordinates
// fetching, extraction, and rendering or rasterization of a single
// page. The pipeline is a strict sequence; each stage consumes the
// prior stage's complete output and holds no cross-call state.
package scrape

import (
	"context"

	"github.com/fwojciec/pagescribe"
)

// Pipeline wires the collaborators for one scrape-and-render flow.
type Pipeline struct {
	Fetcher   pagescribe.Fetcher
	Extractor pagescribe.Extractor

	// Rasterizer is required only for PDF output.
	Rasterizer pagescribe.Rasterizer

	// Archive, when set, receives every scraped document whose
	// content changed since the last scrape.
	Archive pagescribe.Archive
}

// Scrape fetches the page at url and extracts its content document.
// Fetch failures propagate unchanged; extraction itself degrades on
// sparse markup rather than failing. When an archive is configured
// the document is persisted before being returned; a document whose
// content hash matches the archived entry is not rewritten, so the
// archived timestamp records when the content last changed.
func (p *Pipeline) Scrape(ctx context.Context, url string) (*pagescribe.ContentDocument, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := p.Extractor.Extract(html, url)
	if err != nil {
		return nil, err
	}

	if p.Archive != nil {
		if err := p.archive(ctx, doc); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// archive persists doc unless the archived entry for its URL already
// carries the same content hash.
func (p *Pipeline) archive(ctx context.Context, doc *pagescribe.ContentDocument) error {
	prior, err := p.Archive.FindDocumentByURL(ctx, doc.Metadata.SourceURL)
	if err != nil && pagescribe.ErrorCode(err) != pagescribe.ENOTFOUND {
		return err
	}
	if prior != nil && prior.Hash() == doc.Hash() {
		return nil
	}
	return p.Archive.SaveDocument(ctx, doc)
}

// Run fetches, extracts, and renders the page into a text format.
// Unsupported formats are rejected before any fetch happens so a bad
// request never produces partial work.
func (p *Pipeline) Run(ctx context.Context, url string, format pagescribe.Format, opts pagescribe.RenderOptions) (string, error) {
	switch format {
	case pagescribe.FormatMarkdown, pagescribe.FormatText, pagescribe.FormatHTML:
	default:
		return "", pagescribe.Errorf(pagescribe.EUNSUPPORTED, "unsupported render format %q", string(format))
	}

	doc, err := p.Scrape(ctx, url)
	if err != nil {
		return "", err
	}
	return pagescribe.Render(doc, format, opts)
}

// RunPDF fetches, extracts, and rasterizes the page to a PDF file at
// outPath. Rasterization failures propagate as-is; no fallback format
// is substituted.
func (p *Pipeline) RunPDF(ctx context.Context, url string, outPath string, opts pagescribe.PageOptions) error {
	if p.Rasterizer == nil {
		return pagescribe.Errorf(pagescribe.EINVALID, "pdf output requires a rasterizer")
	}

	doc, err := p.Scrape(ctx, url)
	if err != nil {
		return err
	}
	return p.Rasterizer.Rasterize(ctx, doc, outPath, opts)
}
