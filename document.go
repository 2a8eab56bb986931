package pagescribe

import (
	"context"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Metadata describes the provenance of an extracted document.
type Metadata struct {
	SourceURL   string    `json:"sourceUrl"`
	Description string    `json:"description"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// ContentDocument is the result of one extraction run: the page title,
// provenance metadata, and the extracted sections in document order.
// It is treated as immutable; callers that want a different section
// sequence derive a new value with WithSections.
type ContentDocument struct {
	Title    string    `json:"title"`
	Metadata Metadata  `json:"metadata"`
	Sections []Section `json:"sections"`
}

// Validate returns an error if the document contains invalid fields.
func (d *ContentDocument) Validate() error {
	if d.Metadata.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Metadata.ExtractedAt.IsZero() {
		return Errorf(EINVALID, "document extraction timestamp required")
	}
	return nil
}

// WithSections returns a copy of the document carrying the given
// section sequence. The receiver is not modified.
func (d *ContentDocument) WithSections(sections []Section) *ContentDocument {
	out := *d
	out.Sections = make([]Section, len(sections))
	copy(out.Sections, sections)
	return &out
}

// Hash returns a fingerprint of the document's extracted content,
// derived from the section identity keys. Two documents with the same
// sections in the same order hash identically, independent of
// extraction time.
func (d *ContentDocument) Hash() string {
	h := xxhash.New()
	for _, s := range d.Sections {
		_, _ = h.WriteString(s.Key())
		_, _ = h.WriteString("\n")
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation. Failures are
	// reported with code EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// Extractor turns raw HTML into a ContentDocument. Extraction never
// fails on sparse or malformed markup; such input simply yields fewer
// or zero sections and an empty title.
type Extractor interface {
	Extract(html string, sourceURL string) (*ContentDocument, error)
}
