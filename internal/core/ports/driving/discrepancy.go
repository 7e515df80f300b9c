package driving

import (
	"context"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

// DiscrepancyService provides read access to stored discrepancies.
type DiscrepancyService interface {
	// List returns the discrepancies of one document, or all discrepancies
	// when documentID is empty.
	List(ctx context.Context, documentID string) ([]domain.Discrepancy, error)
}
