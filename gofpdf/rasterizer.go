// Package gofpdf provides a pure-Go implementation of
// pagescribe.Rasterizer. It lays the document out directly with gofpdf
// and needs no browser, at the cost of simpler typography than the
// Chrome-print rasterizer.
package gofpdf

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fwojciec/pagescribe"
	"github.com/jung-kurt/gofpdf"
)

// Ensure Rasterizer implements pagescribe.Rasterizer at compile time.
var _ pagescribe.Rasterizer = (*Rasterizer)(nil)

const (
	bodyFontSize  = 11.0
	metaFontSize  = 8.5
	lineHeight    = 0.22 // inches at body size
	sectionGap    = 0.12
	quoteIndent   = 0.4
	listIndent    = 0.25
)

// Rasterizer renders documents to PDF without a browser.
type Rasterizer struct{}

// NewRasterizer creates a new Rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize lays out the document and writes the PDF to outPath
// atomically; on failure no partial file remains. Layout failures
// carry code EINTERNAL.
func (r *Rasterizer) Rasterize(ctx context.Context, doc *pagescribe.ContentDocument, outPath string, opts pagescribe.PageOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	width, height := opts.Size.Dimensions()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "in",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	// Core fonts are cp1252; the translator maps UTF-8 text (Umlauts
	// in month names, the bullet glyph) into it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetMargins(opts.Margins.Left, opts.Margins.Top, opts.Margins.Right)
	pdf.SetAutoPageBreak(true, opts.Margins.Bottom)
	pdf.AddPage()

	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", 20)
		pdf.MultiCell(0, lineHeight*1.8, tr(doc.Title), "", "L", false)
	}

	pdf.SetFont("Helvetica", "", metaFontSize)
	pdf.SetTextColor(85, 85, 85)
	pdf.MultiCell(0, lineHeight*0.8, tr("Quelle: "+doc.Metadata.SourceURL), "", "L", false)
	pdf.MultiCell(0, lineHeight*0.8, tr("Erstellt am: "+pagescribe.FormatGenerationDate(doc.Metadata.ExtractedAt)), "", "L", false)
	pdf.SetTextColor(26, 26, 26)
	pdf.Ln(sectionGap * 2)

	for _, section := range doc.Sections {
		writeSection(pdf, tr, section)
	}

	if opts.FooterText != "" {
		pdf.Ln(sectionGap * 2)
		x := pdf.GetX()
		y := pdf.GetY()
		pdf.Line(x, y, width-opts.Margins.Right, y)
		pdf.Ln(0.08)
		pdf.SetFont("Helvetica", "", metaFontSize)
		pdf.SetTextColor(85, 85, 85)
		pdf.MultiCell(0, lineHeight*0.8, tr(opts.FooterText), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: %v", err)
	}
	return writeAtomic(outPath, buf.Bytes())
}

// Close releases resources. The direct-layout rasterizer holds none.
func (r *Rasterizer) Close() error {
	return nil
}

func writeSection(pdf *gofpdf.Fpdf, tr func(string) string, section pagescribe.Section) {
	switch s := section.(type) {
	case pagescribe.Heading:
		size := 12.0
		switch s.Level {
		case 1:
			size = 18.0
		case 2:
			size = 15.0
		case 3:
			size = 13.0
		}
		pdf.SetFont("Helvetica", "B", size)
		pdf.MultiCell(0, lineHeight*1.4, tr(s.Text), "", "L", false)
		pdf.Ln(sectionGap / 2)

	case pagescribe.Paragraph:
		pdf.SetFont("Helvetica", "", bodyFontSize)
		pdf.MultiCell(0, lineHeight, tr(s.Text), "", "J", false)
		pdf.Ln(sectionGap)

	case pagescribe.List:
		pdf.SetFont("Helvetica", "", bodyFontSize)
		left, _, _, _ := pdf.GetMargins()
		pdf.SetLeftMargin(left + listIndent)
		for i, item := range s.Items {
			prefix := "• "
			if s.Ordered {
				prefix = strconv.Itoa(i+1) + ". "
			}
			pdf.MultiCell(0, lineHeight, tr(prefix+item), "", "L", false)
		}
		pdf.SetLeftMargin(left)
		pdf.Ln(sectionGap)

	case pagescribe.Quote:
		pdf.SetFont("Helvetica", "I", bodyFontSize)
		left, _, _, _ := pdf.GetMargins()
		pdf.SetLeftMargin(left + quoteIndent)
		pdf.MultiCell(0, lineHeight, tr("“"+s.Text+"”"), "", "L", false)
		pdf.SetLeftMargin(left)
		pdf.Ln(sectionGap)
	}
}

// writeAtomic writes data beside outPath and renames it into place.
func writeAtomic(outPath string, data []byte) error {
	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, ".pagescribe-*.pdf")
	if err != nil {
		return pagescribe.Errorf(pagescribe.EINTERNAL, "rasterize: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
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
