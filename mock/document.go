package mock

import (
	"context"

	"github.com/fwojciec/sitegist"
)

var _ sitegist.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of sitegist.DocumentService.
type DocumentService struct {
	CreateDocumentFn          func(ctx context.Context, doc *sitegist.Document) error
	FindDocumentByIDFn        func(ctx context.Context, id string) (*sitegist.Document, error)
	FindDocumentBySourceURLFn func(ctx context.Context, sourceURL string) (*sitegist.Document, error)
	FindDocumentsFn           func(ctx context.Context, filter sitegist.DocumentFilter) ([]*sitegist.Document, error)
	DeleteDocumentFn          func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *sitegist.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*sitegist.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocumentBySourceURL(ctx context.Context, sourceURL string) (*sitegist.Document, error) {
	return s.FindDocumentBySourceURLFn(ctx, sourceURL)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter sitegist.DocumentFilter) ([]*sitegist.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
