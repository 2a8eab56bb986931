package rod

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagescribe"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Rasterizer implements pagescribe.Rasterizer at compile time.
var _ pagescribe.Rasterizer = (*Rasterizer)(nil)

// Rasterizer produces paginated PDF files by loading the styled
// document into a headless Chrome page and printing it. Page size and
// margins are applied through the print protocol, not CSS.
type Rasterizer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// NewRasterizer creates a new Rasterizer backed by a headless Chrome
// browser. Close must be called when the Rasterizer is no longer
// needed.
func NewRasterizer() (*Rasterizer, error) {
	browser, lnchr, err := launchBrowser()
	if err != nil {
		return nil, err
	}
	return &Rasterizer{browser: browser, launcher: lnchr}, nil
}

// Rasterize renders the document's styled HTML and prints it to a PDF
// at outPath. The file is written atomically: on failure no partial
// output remains. Print failures carry code EINTERNAL.
func (r *Rasterizer) Rasterize(ctx context.Context, doc *pagescribe.ContentDocument, outPath string, opts pagescribe.PageOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	styled := pagescribe.RenderHTML(doc, opts.RenderOptions)
	if err := page.SetDocumentContent(styled); err != nil {
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: loading document: %v", err)
	}
	if err := page.WaitLoad(); err != nil {
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: waiting for load: %v", err)
	}

	width, height := opts.Size.Dimensions()
	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      num(width),
		PaperHeight:     num(height),
		MarginTop:       num(opts.Margins.Top),
		MarginBottom:    num(opts.Margins.Bottom),
		MarginLeft:      num(opts.Margins.Left),
		MarginRight:     num(opts.Margins.Right),
	})
	if err != nil {
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: printing: %v", err)
	}

	return writeAtomic(outPath, stream)
}

// Close releases browser resources.
func (r *Rasterizer) Close() error {
	err := r.browser.Close()
	r.launcher.Kill()
	return err
}

// writeAtomic streams the PDF to a temporary file beside outPath and
// renames it into place, so a failed print never leaves a partial file.
func writeAtomic(outPath string, src io.Reader) error {
	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, ".pagescribe-*.pdf")
	if err != nil {
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: writing output: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: closing output: %v", err)
	}

	if err := os.Rename(tmp.Name(), outPath); err != nil {
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: %v", err)
	}
	return nil
}

func num(v float64) *float64 {
	return &v
}
