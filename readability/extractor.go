// Package readability provides an extraction engine built on
// go-readability's port of the Firefox Reader Mode heuristics.
// Readability isolates the main content; the content tree is then
// classified into sections by the structured extractor.
package readability

import (
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/pagescribe"
	gq "github.com/fwojciec/pagescribe/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagescribe.Extractor at compile time.
var _ pagescribe.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	structured *gq.Extractor
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...gq.Option) *Extractor {
	return &Extractor{structured: gq.NewExtractor(opts...)}
}

// Extract runs readability over rawHTML and classifies the resulting
// content into sections. Pages readability cannot parse degrade to a
// document with zero sections rather than an error.
func (e *Extractor) Extract(rawHTML string, sourceURL string) (*pagescribe.ContentDocument, error) {
	doc := &pagescribe.ContentDocument{
		Metadata: pagescribe.Metadata{
			SourceURL:   sourceURL,
			ExtractedAt: time.Now().UTC(),
		},
	}

	if strings.TrimSpace(rawHTML) == "" {
		return doc, nil
	}

	// Readability uses the page URL to resolve relative references;
	// an unparsable URL is fine to pass as nil.
	pageURL, err := url.Parse(sourceURL)
	if err != nil {
		pageURL = nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return doc, nil
	}

	inner, err := e.structured.Extract(article.Content, sourceURL)
	if err != nil {
		return nil, err
	}

	doc.Sections = inner.Sections
	doc.Metadata.ExtractedAt = inner.Metadata.ExtractedAt

	doc.Title = article.Title
	if doc.Title == "" {
		doc.Title = inner.Title
	}
	doc.Metadata.Description = article.Excerpt
	if doc.Metadata.Description == "" {
		doc.Metadata.Description = inner.Metadata.Description
	}

	return doc, nil
}
