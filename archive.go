package pagescribe

import "context"

// Archive stores scraped documents keyed by source URL. Saving a URL
// that is already archived replaces the earlier entry, so the archive
// always holds the latest scrape of each page. The content hash makes
// it cheap to tell whether a page changed between scrapes.
type Archive interface {
	// SaveDocument inserts or replaces the entry for the document's
	// source URL.
	SaveDocument(ctx context.Context, doc *ContentDocument) error

	// FindDocumentByURL returns the archived document for url.
	// Returns ENOTFOUND when the URL has never been archived.
	FindDocumentByURL(ctx context.Context, url string) (*ContentDocument, error)

	// FindDocuments returns all archived documents ordered by source
	// URL.
	FindDocuments(ctx context.Context) ([]*ContentDocument, error)

	// DeleteDocument removes the entry for url. Returns ENOTFOUND
	// when the URL is not archived.
	DeleteDocument(ctx context.Context, url string) error

	// Close releases the underlying storage.
	Close() error
}
