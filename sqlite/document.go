package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/sitegist"
	"github.com/google/uuid"
	"github.com/ncruces/go-sqlite3"
)

// Compile-time interface verification.
var _ sitegist.DocumentService = (*DocumentService)(nil)

// DocumentService implements sitegist.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument creates a new document, assigning its ID.
// The source URL is unique per store, so a second document for the same
// site is rejected with ECONFLICT.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *sitegist.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.ScrapedAt.IsZero() {
		doc.ScrapedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, title, content, content_hash, pages, words, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.Title, doc.Content, doc.ContentHash,
		doc.Pages, doc.Words, doc.ScrapedAt.Format(time.RFC3339))

	if isUniqueConstraintErr(err) {
		return sitegist.Errorf(sitegist.ECONFLICT, "document for %q already exists", doc.SourceURL)
	}
	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*sitegist.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, pages, words, scraped_at
		FROM documents
		WHERE id = ?
	`, id)
	return scanDocument(row)
}

// FindDocumentBySourceURL retrieves the document cached for a normalized
// root URL.
func (s *DocumentService) FindDocumentBySourceURL(ctx context.Context, sourceURL string) (*sitegist.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, content, content_hash, pages, words, scraped_at
		FROM documents
		WHERE source_url = ?
	`, sourceURL)
	return scanDocument(row)
}

// FindDocuments retrieves documents matching the filter, most recently
// scraped first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter sitegist.DocumentFilter) ([]*sitegist.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, content, content_hash, pages, words, scraped_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY scraped_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*sitegist.Document
	for rows.Next() {
		var doc sitegist.Document
		var scrapedAt string

		if err := rows.Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Content,
			&doc.ContentHash, &doc.Pages, &doc.Words, &scrapedAt); err != nil {
			return nil, err
		}

		doc.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sitegist.Errorf(sitegist.ENOTFOUND, "document not found")
	}

	return nil
}

// scanDocument scans a single-row query result into a Document.
func scanDocument(row *sql.Row) (*sitegist.Document, error) {
	var doc sitegist.Document
	var scrapedAt string

	err := row.Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Content,
		&doc.ContentHash, &doc.Pages, &doc.Words, &scrapedAt)
	if err == sql.ErrNoRows {
		return nil, sitegist.Errorf(sitegist.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	doc.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

func isUniqueConstraintErr(err error) bool {
	var serr *sqlite3.Error
	return errors.As(err, &serr) && serr.ExtendedCode() == sqlite3.CONSTRAINT_UNIQUE
}
