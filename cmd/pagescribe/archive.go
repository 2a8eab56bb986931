package main

import (
	"fmt"

	"github.com/fwojciec/pagescribe"
)

// Run executes the archive list command.
func (c *ArchiveListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Archive.FindDocuments(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescribe.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "Archive is empty. Scrape with --archive to populate it.")
		return nil
	}

	for _, doc := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			doc.Hash(),
			doc.Metadata.ExtractedAt.Format("2006-01-02"),
			doc.Metadata.SourceURL,
			doc.Title)
	}

	return nil
}

// Run executes the archive show command.
func (c *ArchiveShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Archive.FindDocumentByURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescribe.ErrorMessage(err))
		return err
	}

	out, err := pagescribe.Render(doc, pagescribe.Format(c.Format), pagescribe.RenderOptions{
		FooterText: c.Footer,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(deps.Stdout, out)
	return nil
}

// Run executes the archive delete command.
func (c *ArchiveDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Archive.DeleteDocument(deps.Ctx, c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagescribe.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.URL)
	return nil
}
