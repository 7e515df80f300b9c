package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// Ensure DiscrepancyStore implements the interface.
var _ driven.DiscrepancyStore = (*DiscrepancyStore)(nil)

// DiscrepancyStore is an in-memory implementation of driven.DiscrepancyStore.
type DiscrepancyStore struct {
	mu            sync.RWMutex
	discrepancies map[string]domain.Discrepancy
}

// NewDiscrepancyStore creates a new in-memory discrepancy store.
func NewDiscrepancyStore() *DiscrepancyStore {
	return &DiscrepancyStore{
		discrepancies: make(map[string]domain.Discrepancy),
	}
}

// SaveDiscrepancies upserts discrepancies by ID.
func (s *DiscrepancyStore) SaveDiscrepancies(_ context.Context, discrepancies []domain.Discrepancy) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range discrepancies {
		s.discrepancies[discrepancies[i].DiscrepancyID] = discrepancies[i]
	}
	return len(discrepancies), nil
}

// ListDiscrepancies returns discrepancies for a document, or all when documentID is empty.
func (s *DiscrepancyStore) ListDiscrepancies(_ context.Context, documentID string) ([]domain.Discrepancy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Discrepancy
	for id := range s.discrepancies {
		d := s.discrepancies[id]
		if documentID == "" || d.DocumentID == documentID {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DiscrepancyID < result[j].DiscrepancyID
	})
	return result, nil
}
