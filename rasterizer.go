package pagescribe

import "context"

// PageSize identifies a paper size for paginated output.
type PageSize string

// Supported paper sizes.
const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
	PageLegal  PageSize = "Legal"
)

// Dimensions returns the page width and height in inches. Unknown
// sizes fall back to A4.
func (p PageSize) Dimensions() (width, height float64) {
	switch p {
	case PageLetter:
		return 8.5, 11.0
	case PageLegal:
		return 8.5, 14.0
	default:
		return 8.27, 11.69
	}
}

// Margins describes page margins in inches.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// UniformMargins returns margins with the same value on all sides.
func UniformMargins(inches float64) Margins {
	return Margins{Top: inches, Bottom: inches, Left: inches, Right: inches}
}

// PageOptions configures paginated output.
type PageOptions struct {
	RenderOptions

	Size    PageSize
	Margins Margins
}

// DefaultPageOptions returns A4 pages with 0.75in margins.
func DefaultPageOptions() PageOptions {
	return PageOptions{Size: PageA4, Margins: UniformMargins(0.75)}
}

// Rasterizer produces a paginated PDF file from a document.
// Implementations hide the rendering engine (headless browser print
// vs. direct layout). Failures are reported with code EINTERNAL; no
// partial file is left behind on failure.
type Rasterizer interface {
	Rasterize(ctx context.Context, doc *ContentDocument, outPath string, opts PageOptions) error

	// Close releases any resources held by the rasterizer.
	Close() error
}
