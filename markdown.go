package pagescribe

import (
	"strconv"
	"strings"
)

// RenderMarkdown serializes a document as Markdown. Unknown section
// variants render as nothing.
func RenderMarkdown(doc *ContentDocument, opts RenderOptions) string {
	var b strings.Builder

	if doc.Title != "" {
		b.WriteString("# ")
		b.WriteString(doc.Title)
		b.WriteString("\n\n")
	}

	b.WriteString("Quelle: ")
	b.WriteString(doc.Metadata.SourceURL)
	b.WriteString("  \nErstellt am: ")
	b.WriteString(FormatGenerationDate(doc.Metadata.ExtractedAt))
	b.WriteString("\n\n")

	for _, section := range doc.Sections {
		if md := markdownSection(section); md != "" {
			b.WriteString(md)
			b.WriteString("\n")
		}
	}

	if opts.FooterText != "" {
		b.WriteString("---\n\n")
		b.WriteString(opts.FooterText)
		b.WriteString("\n")
	}

	return b.String()
}

// markdownSection renders one section without trailing blank line.
func markdownSection(section Section) string {
	switch s := section.(type) {
	case Heading:
		return strings.Repeat("#", s.Level) + " " + s.Text + "\n"
	case Paragraph:
		return s.Text + "\n"
	case List:
		var b strings.Builder
		for i, item := range s.Items {
			if s.Ordered {
				b.WriteString(strconv.Itoa(i + 1))
				b.WriteString(". ")
			} else {
				b.WriteString("- ")
			}
			b.WriteString(item)
			b.WriteString("\n")
		}
		return b.String()
	case Quote:
		return "> " + s.Text + "\n"
	default:
		return ""
	}
}
