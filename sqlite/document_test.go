package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/sitegist"
	"github.com/fwojciec/sitegist/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(sourceURL string) *sitegist.Document {
	return &sitegist.Document{
		SourceURL:   sourceURL,
		Title:       "Example Docs",
		Content:     "# Example\n\nSynthesized reference content.",
		ContentHash: "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		Pages:       4,
		Words:       1200,
	}
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and scrape time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		doc := testDocument("https://example.com")

		err := svc.CreateDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.NotEmpty(t, doc.ID)
		assert.False(t, doc.ScrapedAt.IsZero())
	})

	t.Run("preserves an explicit scrape time", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		doc := testDocument("https://example.com")
		scrapedAt := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
		doc.ScrapedAt = scrapedAt

		require.NoError(t, svc.CreateDocument(context.Background(), doc))

		got, err := svc.FindDocumentByID(context.Background(), doc.ID)
		require.NoError(t, err)
		assert.True(t, got.ScrapedAt.Equal(scrapedAt))
	})

	t.Run("rejects duplicate source URL with ECONFLICT", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateDocument(ctx, testDocument("https://example.com")))
		err := svc.CreateDocument(ctx, testDocument("https://example.com"))

		require.Error(t, err)
		assert.Equal(t, sitegist.ECONFLICT, sitegist.ErrorCode(err))
	})

	t.Run("rejects invalid document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		doc := testDocument("https://example.com")
		doc.Content = ""

		err := svc.CreateDocument(context.Background(), doc)

		require.Error(t, err)
		assert.Equal(t, sitegist.EINVALID, sitegist.ErrorCode(err))
	})
}

func TestDocumentService_FindDocumentByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		ctx := context.Background()
		doc := testDocument("https://example.com")
		require.NoError(t, svc.CreateDocument(ctx, doc))

		got, err := svc.FindDocumentByID(ctx, doc.ID)

		require.NoError(t, err)
		assert.Equal(t, doc.ID, got.ID)
		assert.Equal(t, doc.SourceURL, got.SourceURL)
		assert.Equal(t, doc.Title, got.Title)
		assert.Equal(t, doc.Content, got.Content)
		assert.Equal(t, doc.ContentHash, got.ContentHash)
		assert.Equal(t, doc.Pages, got.Pages)
		assert.Equal(t, doc.Words, got.Words)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))

		_, err := svc.FindDocumentByID(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, sitegist.ENOTFOUND, sitegist.ErrorCode(err))
	})
}

func TestDocumentService_FindDocumentBySourceURL(t *testing.T) {
	t.Parallel()

	t.Run("returns the cached document for the URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		ctx := context.Background()
		require.NoError(t, svc.CreateDocument(ctx, testDocument("https://example.com")))
		other := testDocument("https://other.example.com")
		require.NoError(t, svc.CreateDocument(ctx, other))

		got, err := svc.FindDocumentBySourceURL(ctx, "https://other.example.com")

		require.NoError(t, err)
		assert.Equal(t, other.ID, got.ID)
	})

	t.Run("returns ENOTFOUND for an uncached URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))

		_, err := svc.FindDocumentBySourceURL(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, sitegist.ENOTFOUND, sitegist.ErrorCode(err))
	})
}

func TestDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns documents most recently scraped first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		ctx := context.Background()

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := range 3 {
			doc := testDocument(fmt.Sprintf("https://site%d.example.com", i))
			doc.ScrapedAt = base.Add(time.Duration(i) * time.Hour)
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindDocuments(ctx, sitegist.DocumentFilter{})

		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "https://site2.example.com", docs[0].SourceURL)
		assert.Equal(t, "https://site0.example.com", docs[2].SourceURL)
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		ctx := context.Background()

		match := testDocument("https://a.example.com")
		match.ContentHash = "aaaa"
		require.NoError(t, svc.CreateDocument(ctx, match))
		miss := testDocument("https://b.example.com")
		miss.ContentHash = "bbbb"
		require.NoError(t, svc.CreateDocument(ctx, miss))

		hash := "aaaa"
		docs, err := svc.FindDocuments(ctx, sitegist.DocumentFilter{ContentHash: &hash})

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, match.ID, docs[0].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		ctx := context.Background()

		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := range 5 {
			doc := testDocument(fmt.Sprintf("https://site%d.example.com", i))
			doc.ScrapedAt = base.Add(time.Duration(i) * time.Hour)
			require.NoError(t, svc.CreateDocument(ctx, doc))
		}

		docs, err := svc.FindDocuments(ctx, sitegist.DocumentFilter{Limit: 2, Offset: 1})

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "https://site3.example.com", docs[0].SourceURL)
		assert.Equal(t, "https://site2.example.com", docs[1].SourceURL)
	})

	t.Run("returns empty result for no matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))

		url := "https://example.com"
		docs, err := svc.FindDocuments(context.Background(), sitegist.DocumentFilter{SourceURL: &url})

		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	t.Parallel()

	t.Run("removes the document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))
		ctx := context.Background()
		doc := testDocument("https://example.com")
		require.NoError(t, svc.CreateDocument(ctx, doc))

		require.NoError(t, svc.DeleteDocument(ctx, doc.ID))

		_, err := svc.FindDocumentByID(ctx, doc.ID)
		assert.Equal(t, sitegist.ENOTFOUND, sitegist.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(MustOpenDB(t))

		err := svc.DeleteDocument(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, sitegist.ENOTFOUND, sitegist.ErrorCode(err))
	})
}
