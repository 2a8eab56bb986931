package goquery

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagescribe"
)

// Ensure Extractor implements pagescribe.Extractor at compile time.
var _ pagescribe.Extractor = (*Extractor)(nil)

// scopeSelectors locate the main content region, in priority order.
// The document body is the fallback when none match.
var scopeSelectors = []string{
	"main",
	"[role='main']",
	"article",
	"#main-content",
	".main-content",
	"#content",
	".content",
}

// Extractor walks a sanitized document and produces typed sections.
type Extractor struct {
	minParagraphLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinParagraphLength sets the minimum trimmed length, in
// characters, for a paragraph to qualify as a section. Defaults to
// pagescribe.DefaultMinParagraphLength.
func WithMinParagraphLength(n int) Option {
	return func(e *Extractor) {
		e.minParagraphLength = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		minParagraphLength: pagescribe.DefaultMinParagraphLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses and sanitizes rawHTML, then walks the main content
// scope collecting sections in document order with first-occurrence
// deduplication. Sparse or malformed markup yields fewer or zero
// sections, never an error; the only error surfaces from the parser.
func (e *Extractor) Extract(rawHTML string, sourceURL string) (*pagescribe.ContentDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagescribe.Errorf(pagescribe.EINVALID, "failed to parse HTML: %v", err)
	}

	Sanitize(doc)

	return &pagescribe.ContentDocument{
		Title: extractTitle(doc),
		Metadata: pagescribe.Metadata{
			SourceURL:   sourceURL,
			Description: extractDescription(doc),
			ExtractedAt: time.Now().UTC(),
		},
		Sections: e.extractSections(contentScope(doc)),
	}, nil
}

// contentScope returns the first element matching a main-content
// landmark, falling back to the document body.
func contentScope(doc *goquery.Document) *goquery.Selection {
	for _, selector := range scopeSelectors {
		if s := doc.Find(selector).First(); s.Length() > 0 {
			return s
		}
	}
	return doc.Find("body")
}

// extractSections visits every descendant element of the scope in
// document order, classifies it, and appends the section unless its
// identity key was already seen. The seen set is local to this call.
func (e *Extractor) extractSections(scope *goquery.Selection) []pagescribe.Section {
	var sections []pagescribe.Section
	seen := make(map[uint64]struct{})

	scope.Find("*").Each(func(_ int, s *goquery.Selection) {
		section, ok := e.classify(s)
		if !ok {
			return
		}
		sum := xxhash.Sum64String(section.Key())
		if _, dup := seen[sum]; dup {
			return
		}
		seen[sum] = struct{}{}
		sections = append(sections, section)
	})

	return sections
}

// classify maps an element to a section by tag. Elements nested inside
// an already-classified container (ul, ol) or a table are skipped:
// list content belongs to the ancestor's extraction and table content
// is dropped.
func (e *Extractor) classify(s *goquery.Selection) (pagescribe.Section, bool) {
	if s.ParentsFiltered("ul, ol, table").Length() > 0 {
		return nil, false
	}

	switch name := goquery.NodeName(s); name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		text := collapseText(s.Text())
		if text == "" {
			return nil, false
		}
		return pagescribe.Heading{Level: int(name[1] - '0'), Text: text}, true

	case "p":
		text := collapseText(s.Text())
		if utf8.RuneCountInString(text) < e.minParagraphLength {
			return nil, false
		}
		return pagescribe.Paragraph{Text: text}, true

	case "ul", "ol":
		items := listItems(s)
		if len(items) == 0 {
			return nil, false
		}
		return pagescribe.List{Ordered: name == "ol", Items: items}, true

	case "blockquote":
		text := collapseText(s.Text())
		if text == "" {
			return nil, false
		}
		return pagescribe.Quote{Text: text}, true
	}

	return nil, false
}

// listItems returns the trimmed, non-empty text of direct child list
// items. Text of lists nested inside an item is carried within that
// item's text rather than flattened into separate items.
func listItems(s *goquery.Selection) []string {
	var items []string
	s.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if text := collapseText(li.Text()); text != "" {
			items = append(items, text)
		}
	})
	return items
}

// extractTitle returns the text of the first non-empty h1 anywhere in
// the document, falling back to the title element, else "".
func extractTitle(doc *goquery.Document) string {
	title := ""
	doc.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := collapseText(s.Text()); text != "" {
			title = text
			return false
		}
		return true
	})
	if title != "" {
		return title
	}
	return collapseText(doc.Find("title").First().Text())
}

// extractDescription returns the content attribute of the description
// meta element, else "".
func extractDescription(doc *goquery.Document) string {
	content, _ := doc.Find("meta[name='description']").First().Attr("content")
	return strings.TrimSpace(content)
}

// collapseText trims text and collapses internal whitespace runs,
// which flattens source-markup line wrapping into single spaces.
func collapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
