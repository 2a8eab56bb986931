package pagescribe

import (
	"html"
	"strconv"
	"strings"
)

// documentStyle is the stylesheet embedded in the styled-document
// output. Layout is intentionally plain; page size and margins are
// applied by the rasterizer, not here.
const documentStyle = `body { font-family: Georgia, "Times New Roman", serif; font-size: 12pt; line-height: 1.5; color: #1a1a1a; }
h1 { font-size: 20pt; } h2 { font-size: 16pt; } h3 { font-size: 14pt; }
h4, h5, h6 { font-size: 12pt; }
p { text-align: justify; margin: 0 0 0.7em 0; }
blockquote { margin: 0.7em 1.5em; padding-left: 0.8em; border-left: 3px solid #999; font-style: italic; }
.meta { color: #555; font-size: 10pt; margin-bottom: 1.5em; }
.footer { margin-top: 2em; padding-top: 0.5em; border-top: 1px solid #999; color: #555; font-size: 10pt; }`

// RenderHTML serializes a document as a standalone styled HTML
// document suitable for rasterization into a paginated file. Every
// piece of text content passes through escapeText before insertion.
// Unknown section variants render as nothing.
func RenderHTML(doc *ContentDocument, opts RenderOptions) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>")
	b.WriteString(escapeText(doc.Title))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(documentStyle)
	b.WriteString("\n</style>\n</head>\n<body>\n")

	if doc.Title != "" {
		b.WriteString("<h1>")
		b.WriteString(escapeText(doc.Title))
		b.WriteString("</h1>\n")
	}

	b.WriteString("<div class=\"meta\">Quelle: ")
	b.WriteString(escapeText(doc.Metadata.SourceURL))
	b.WriteString("<br>Erstellt am: ")
	b.WriteString(escapeText(FormatGenerationDate(doc.Metadata.ExtractedAt)))
	b.WriteString("</div>\n")

	for _, section := range doc.Sections {
		b.WriteString(htmlSection(section))
	}

	if opts.FooterText != "" {
		b.WriteString("<div class=\"footer\">")
		b.WriteString(escapeText(opts.FooterText))
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func htmlSection(section Section) string {
	switch s := section.(type) {
	case Heading:
		tag := "h" + strconv.Itoa(s.Level)
		return "<" + tag + ">" + escapeText(s.Text) + "</" + tag + ">\n"
	case Paragraph:
		return "<p>" + escapeText(s.Text) + "</p>\n"
	case List:
		tag := "ul"
		if s.Ordered {
			tag = "ol"
		}
		var b strings.Builder
		b.WriteString("<" + tag + ">\n")
		for _, item := range s.Items {
			b.WriteString("<li>")
			b.WriteString(escapeText(item))
			b.WriteString("</li>\n")
		}
		b.WriteString("</" + tag + ">\n")
		return b.String()
	case Quote:
		return "<blockquote>" + escapeText(s.Text) + "</blockquote>\n"
	default:
		return ""
	}
}

// escapeText escapes the five characters & < > " ' for insertion into
// markup. All renderer text content must pass through here; the output
// is recoverable with standard HTML unescaping.
func escapeText(s string) string {
	return html.EscapeString(s)
}
