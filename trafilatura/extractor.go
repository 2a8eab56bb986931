// Package trafilatura provides a readability-style extractor for
// pages whose markup defeats tag-based classification. Trafilatura
// locates the main content; the cleaned content tree is then
// classified into sections by the structured extractor.
package trafilatura

import (
	"bytes"
	"strings"
	"time"

	"github.com/fwojciec/pagescribe"
	gq "github.com/fwojciec/pagescribe/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagescribe.Extractor at compile time.
var _ pagescribe.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	structured *gq.Extractor
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...gq.Option) *Extractor {
	return &Extractor{structured: gq.NewExtractor(opts...)}
}

// Extract runs trafilatura over rawHTML and classifies the extracted
// content into sections. Pages trafilatura cannot handle degrade to a
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// Trafilatura fails on pages without recognizable content;
		// that is sparse input, not a pipeline failure.
		return doc, nil
	}

	doc.Title = result.Metadata.Title
	doc.Metadata.Description = result.Metadata.Description

	if result.ContentNode == nil {
		return doc, nil
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	inner, err := e.structured.Extract(contentHTML, sourceURL)
	if err != nil {
		return nil, err
	}

	doc.Sections = inner.Sections
	doc.Metadata.ExtractedAt = inner.Metadata.ExtractedAt
	if doc.Title == "" {
		doc.Title = inner.Title
	}
	if doc.Metadata.Description == "" {
		doc.Metadata.Description = inner.Metadata.Description
	}

	return doc, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
