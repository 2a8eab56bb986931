package mock

import "github.com/fwojciec/pagescribe"

var _ pagescribe.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagescribe.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string) (*pagescribe.ContentDocument, error)
}

func (e *Extractor) Extract(html string, sourceURL string) (*pagescribe.ContentDocument, error) {
	return e.ExtractFn(html, sourceURL)
}
