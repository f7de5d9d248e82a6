package sitegist

import (
	"context"
	"time"
)

// Document is a synthesized reference document for a scraped website,
// cached so repeat requests for the same site skip the crawl entirely.
type Document struct {
	ID string `json:"id"`

	// SourceURL is the normalized root URL of the crawl. Unique per store.
	SourceURL string `json:"sourceUrl"`

	// Title of the site's root page.
	Title string `json:"title"`

	// Content is the synthesized reference document.
	Content string `json:"content"`

	// ContentHash is the ScrapeResult content hash the document was
	// synthesized from.
	ContentHash string `json:"contentHash"`

	// Pages and Words describe the crawl the document came from.
	Pages int `json:"pages"`
	Words int `json:"words"`

	ScrapedAt time.Time `json:"scrapedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentService represents a service for managing cached reference
// documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	// Returns ECONFLICT if a document for the source URL already exists.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if the document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocumentBySourceURL retrieves the document cached for a
	// normalized root URL. Returns ENOTFOUND if none exists.
	FindDocumentBySourceURL(ctx context.Context, sourceURL string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if the document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID          *string `json:"id"`
	SourceURL   *string `json:"sourceUrl"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
