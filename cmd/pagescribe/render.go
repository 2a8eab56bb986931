package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/pagescribe"
	"github.com/fwojciec/pagescribe/fs"
	"github.com/fwojciec/pagescribe/scrape"
)

// resolveFormat determines the output format from the explicit flag,
// falling back to the --out extension, then to Markdown.
func (c *RenderCmd) resolveFormat() (pagescribe.Format, error) {
	if c.Format != "" {
		return pagescribe.Format(c.Format), nil
	}
	if c.Out != "" {
		return fs.FormatForPath(c.Out)
	}
	return pagescribe.FormatMarkdown, nil
}

// Run executes the render command against the wired dependencies.
func (c *RenderCmd) Run(deps *Dependencies) error {
	format, err := c.resolveFormat()
	if err != nil {
		return err
	}

	pipeline := &scrape.Pipeline{
		Fetcher:    deps.Fetcher,
		Extractor:  deps.Extractor,
		Rasterizer: deps.Rasterizer,
		Archive:    deps.Archive,
	}

	opts := pagescribe.RenderOptions{FooterText: c.Footer}

	if format == pagescribe.FormatPDF {
		outPath := c.Out
		if outPath == "" {
			derived, err := fs.OutputPath(c.URL, pagescribe.FormatPDF)
			if err != nil {
				return err
			}
			outPath = derived
		}
		pageOpts := pagescribe.PageOptions{
			RenderOptions: opts,
			Size:          pagescribe.PageSize(c.PageSize),
			Margins:       pagescribe.UniformMargins(c.Margin),
		}
		if err := pipeline.RunPDF(deps.Ctx, c.URL, outPath, pageOpts); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", outPath)
		return nil
	}

	out, err := pipeline.Run(deps.Ctx, c.URL, format, opts)
	if err != nil {
		return err
	}

	if c.Out == "" {
		_, err = io.WriteString(deps.Stdout, out)
		return err
	}

	if err := fs.WriteFile(c.Out, []byte(out)); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	return nil
}
