package pagescribe

import (
	"strconv"
	"strings"
)

// DefaultMinParagraphLength is the minimum trimmed length a paragraph
// must have to qualify as a section. Shorter fragments are almost
// always labels or widget captions rather than prose.
const DefaultMinParagraphLength = 3

// Section is one unit of extracted semantic content: a heading, a
// paragraph, a list, or a quote. The variant set is closed; renderers
// dispatch on the concrete type and treat unknown variants as empty.
type Section interface {
	// Key returns the identity key used for deduplication. Two
	// sections with the same key are duplicates regardless of where
	// in the document they occur. The key is derived on demand and
	// never stored.
	Key() string

	section()
}

// Heading is a document heading at levels 1 through 6.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a block of prose.
type Paragraph struct {
	Text string
}

// List is an ordered or unordered sequence of items.
type List struct {
	Ordered bool
	Items   []string
}

// Quote is a block quotation.
type Quote struct {
	Text string
}

func (h Heading) section()   {}
func (p Paragraph) section() {}
func (l List) section()      {}
func (q Quote) section()     {}

// itemSeparator joins list items inside an identity key. A control
// character avoids collisions with item text.
const itemSeparator = "\x1f"

// Key returns the heading identity key. The heading level is not part
// of the key: a heading repeated at a different level is still the
// same templated boilerplate.
func (h Heading) Key() string {
	return "heading|" + normalizeKeyText(h.Text)
}

// Key returns the paragraph identity key.
func (p Paragraph) Key() string {
	return "paragraph|" + normalizeKeyText(p.Text)
}

// Key returns the list identity key. Ordered and unordered lists with
// the same items are distinct sections.
func (l List) Key() string {
	normalized := make([]string, len(l.Items))
	for i, item := range l.Items {
		normalized[i] = normalizeKeyText(item)
	}
	return "list|" + strconv.FormatBool(l.Ordered) + "|" + strings.Join(normalized, itemSeparator)
}

// Key returns the quote identity key.
func (q Quote) Key() string {
	return "quote|" + normalizeKeyText(q.Text)
}

// normalizeKeyText lowercases text and collapses runs of whitespace so
// that cosmetic markup differences don't defeat deduplication.
func normalizeKeyText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
