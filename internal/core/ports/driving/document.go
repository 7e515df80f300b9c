package driving

import (
	"context"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

// DocumentService provides read access to stored documents.
type DocumentService interface {
	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)
}
