package driven

import (
	"context"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

// DiscrepancyStore persists discrepancies keyed by DiscrepancyID.
// Saving an existing id replaces it.
type DiscrepancyStore interface {
	// SaveDiscrepancies upserts discrepancies and returns how many were written.
	SaveDiscrepancies(ctx context.Context, discrepancies []domain.Discrepancy) (int, error)

	// ListDiscrepancies returns discrepancies for a document ordered by ID.
	// An empty documentID lists all discrepancies.
	ListDiscrepancies(ctx context.Context, documentID string) ([]domain.Discrepancy, error)
}
