package pagescribe

import (
	"fmt"
	"time"
)

// Format identifies an output format.
type Format string

// Output formats. FormatPDF is produced by a Rasterizer rather than a
// text renderer; the remaining formats render to strings.
const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
)

// RenderOptions configures document rendering across all formats.
type RenderOptions struct {
	// FooterText, when non-empty, is appended as a visually separated
	// footer. An empty value omits the footer entirely.
	FooterText string
}

// Render serializes a document into the requested text format.
// It returns EUNSUPPORTED for formats the renderer set does not
// recognize; FormatPDF is unsupported here because it requires a
// Rasterizer.
func Render(doc *ContentDocument, format Format, opts RenderOptions) (string, error) {
	switch format {
	case FormatMarkdown:
		return RenderMarkdown(doc, opts), nil
	case FormatText:
		return RenderText(doc, opts), nil
	case FormatHTML:
		return RenderHTML(doc, opts), nil
	default:
		return "", Errorf(EUNSUPPORTED, "unsupported render format %q", string(format))
	}
}

// germanMonths holds full month names for the generation-date display.
var germanMonths = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// FormatGenerationDate renders a timestamp as day, full month name,
// year, e.g. "15. Januar 2025". Renderers derive this from the
// document's captured extraction time so repeated renders of one
// document are reproducible.
func FormatGenerationDate(t time.Time) string {
	return fmt.Sprintf("%d. %s %d", t.Day(), germanMonths[t.Month()-1], t.Year())
}
