package driven

import (
	"context"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

// DocumentStore persists documents keyed by DocumentID.
type DocumentStore interface {
	// SaveDocuments stores or replaces documents and returns how many were written.
	SaveDocuments(ctx context.Context, docs []domain.Document) (int, error)

	// FindByIDs returns the stored documents matching the given ids.
	// Unknown ids are ignored.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Document, error)

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all stored documents ordered by ID.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
