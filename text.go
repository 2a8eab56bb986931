package pagescribe

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// bulletGlyph prefixes unordered list items in plain-text output.
const bulletGlyph = "•"

// RenderText serializes a document as plain text. Heading levels 1 and
// 2 are underlined with '=' and '-'; deeper levels render as bare
// lines. Unknown section variants render as nothing.
func RenderText(doc *ContentDocument, opts RenderOptions) string {
	var b strings.Builder

	if doc.Title != "" {
		b.WriteString(underlined(doc.Title, "="))
		b.WriteString("\n")
	}

	b.WriteString("Quelle: ")
	b.WriteString(doc.Metadata.SourceURL)
	b.WriteString("\nErstellt am: ")
	b.WriteString(FormatGenerationDate(doc.Metadata.ExtractedAt))
	b.WriteString("\n\n")

	for _, section := range doc.Sections {
		if txt := textSection(section); txt != "" {
			b.WriteString(txt)
			b.WriteString("\n")
		}
	}

	if opts.FooterText != "" {
		b.WriteString(strings.Repeat("-", 40))
		b.WriteString("\n")
		b.WriteString(opts.FooterText)
		b.WriteString("\n")
	}

	return b.String()
}

func textSection(section Section) string {
	switch s := section.(type) {
	case Heading:
		switch {
		case s.Level == 1:
			return underlined(s.Text, "=")
		case s.Level == 2:
			return underlined(s.Text, "-")
		default:
			return s.Text + "\n"
		}
	case Paragraph:
		return s.Text + "\n"
	case List:
		var b strings.Builder
		for i, item := range s.Items {
			if s.Ordered {
				b.WriteString(strconv.Itoa(i + 1))
				b.WriteString(". ")
			} else {
				b.WriteString(bulletGlyph)
				b.WriteString(" ")
			}
			b.WriteString(item)
			b.WriteString("\n")
		}
		return b.String()
	case Quote:
		return "    “" + s.Text + "”\n"
	default:
		return ""
	}
}

// underlined returns text followed by a same-width underline rune row.
func underlined(text, glyph string) string {
	return text + "\n" + strings.Repeat(glyph, utf8.RuneCountInString(text)) + "\n"
}
