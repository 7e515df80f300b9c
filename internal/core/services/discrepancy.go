package services

import (
	"context"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driving"
)

// Ensure DiscrepancyService implements the interface.
var _ driving.DiscrepancyService = (*DiscrepancyService)(nil)

// DiscrepancyService provides read access to stored discrepancies.
type DiscrepancyService struct {
	store driven.DiscrepancyStore
}

// NewDiscrepancyService creates a new discrepancy service.
func NewDiscrepancyService(store driven.DiscrepancyStore) *DiscrepancyService {
	return &DiscrepancyService{store: store}
}

// List returns discrepancies for a document, or all when documentID is empty.
func (s *DiscrepancyService) List(ctx context.Context, documentID string) ([]domain.Discrepancy, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.ListDiscrepancies(ctx, documentID)
}
