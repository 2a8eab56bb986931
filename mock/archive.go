package mock

import (
	"context"

	"github.com/fwojciec/pagescribe"
)

var _ pagescribe.Archive = (*Archive)(nil)

// Archive is a mock implementation of pagescribe.Archive.
type Archive struct {
	SaveDocumentFn      func(ctx context.Context, doc *pagescribe.ContentDocument) error
	FindDocumentByURLFn func(ctx context.Context, url string) (*pagescribe.ContentDocument, error)
	FindDocumentsFn     func(ctx context.Context) ([]*pagescribe.ContentDocument, error)
	DeleteDocumentFn    func(ctx context.Context, url string) error
	CloseFn             func() error
}

func (a *Archive) SaveDocument(ctx context.Context, doc *pagescribe.ContentDocument) error {
	return a.SaveDocumentFn(ctx, doc)
}

func (a *Archive) FindDocumentByURL(ctx context.Context, url string) (*pagescribe.ContentDocument, error) {
	return a.FindDocumentByURLFn(ctx, url)
}

func (a *Archive) FindDocuments(ctx context.Context) ([]*pagescribe.ContentDocument, error) {
	return a.FindDocumentsFn(ctx)
}

func (a *Archive) DeleteDocument(ctx context.Context, url string) error {
	return a.DeleteDocumentFn(ctx, url)
}

func (a *Archive) Close() error {
	if a.CloseFn == nil {
		return nil
	}
	return a.CloseFn()
}
