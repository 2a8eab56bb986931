package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagescribe"
	"github.com/fwojciec/pagescribe/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archivedDocument(url string) *pagescribe.ContentDocument {
	return &pagescribe.ContentDocument{
		Title: "Getting Started",
		Metadata: pagescribe.Metadata{
			SourceURL:   url,
			Description: "An introduction.",
			ExtractedAt: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		Sections: []pagescribe.Section{
			pagescribe.Heading{Level: 1, Text: "Getting Started"},
			pagescribe.Paragraph{Text: "Install the tool before anything else."},
			pagescribe.List{Ordered: true, Items: []string{"Download", "Install", "Run"}},
			pagescribe.Quote{Text: "Works on my machine."},
		},
	}
}

func TestArchiveService_SaveDocument(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a document through storage", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)
		ctx := context.Background()

		doc := archivedDocument("https://example.com/docs/start")
		require.NoError(t, svc.SaveDocument(ctx, doc))

		got, err := svc.FindDocumentByURL(ctx, "https://example.com/docs/start")
		require.NoError(t, err)
		assert.Equal(t, doc.Title, got.Title)
		assert.Equal(t, doc.Metadata, got.Metadata)
		assert.Equal(t, doc.Sections, got.Sections)
		assert.Equal(t, doc.Hash(), got.Hash())
	})

	t.Run("replaces the entry on repeated saves", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)
		ctx := context.Background()

		doc := archivedDocument("https://example.com/docs/start")
		require.NoError(t, svc.SaveDocument(ctx, doc))

		updated := doc.WithSections([]pagescribe.Section{
			pagescribe.Paragraph{Text: "The page was rewritten."},
		})
		updated.Title = "Getting Started, Second Edition"
		require.NoError(t, svc.SaveDocument(ctx, updated))

		got, err := svc.FindDocumentByURL(ctx, "https://example.com/docs/start")
		require.NoError(t, err)
		assert.Equal(t, "Getting Started, Second Edition", got.Title)
		assert.Equal(t, updated.Sections, got.Sections)

		docs, err := svc.FindDocuments(ctx)
		require.NoError(t, err)
		assert.Len(t, docs, 1, "repeated saves must not create extra rows")
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)

		doc := &pagescribe.ContentDocument{} // missing required fields

		err := svc.SaveDocument(context.Background(), doc)
		require.Error(t, err)
		assert.Equal(t, pagescribe.EINVALID, pagescribe.ErrorCode(err))
	})
}

func TestArchiveService_FindDocumentByURL(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for unarchived URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)

		_, err := svc.FindDocumentByURL(context.Background(), "https://example.com/missing")
		require.Error(t, err)
		assert.Equal(t, pagescribe.ENOTFOUND, pagescribe.ErrorCode(err))
	})
}

func TestArchiveService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns documents ordered by source URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)
		ctx := context.Background()

		require.NoError(t, svc.SaveDocument(ctx, archivedDocument("https://example.com/b")))
		require.NoError(t, svc.SaveDocument(ctx, archivedDocument("https://example.com/a")))
		require.NoError(t, svc.SaveDocument(ctx, archivedDocument("https://example.com/c")))

		docs, err := svc.FindDocuments(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "https://example.com/a", docs[0].Metadata.SourceURL)
		assert.Equal(t, "https://example.com/b", docs[1].Metadata.SourceURL)
		assert.Equal(t, "https://example.com/c", docs[2].Metadata.SourceURL)
	})

	t.Run("returns empty result for empty archive", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)

		docs, err := svc.FindDocuments(context.Background())
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestArchiveService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes an archived document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)
		ctx := context.Background()

		require.NoError(t, svc.SaveDocument(ctx, archivedDocument("https://example.com/doomed")))
		require.NoError(t, svc.DeleteDocument(ctx, "https://example.com/doomed"))

		_, err := svc.FindDocumentByURL(ctx, "https://example.com/doomed")
		assert.Equal(t, pagescribe.ENOTFOUND, pagescribe.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unarchived URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewArchiveService(db)

		err := svc.DeleteDocument(context.Background(), "https://example.com/missing")
		require.Error(t, err)
		assert.Equal(t, pagescribe.ENOTFOUND, pagescribe.ErrorCode(err))
	})
}
