// Package memory provides in-memory implementations of the driven store ports.
// Data is lost when the process exits.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// SaveDocuments stores or replaces documents.
func (s *DocumentStore) SaveDocuments(_ context.Context, docs []domain.Document) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range docs {
		s.documents[docs[i].DocumentID] = docs[i]
	}
	return len(docs), nil
}

// FindByIDs returns the stored documents matching ids, in the order of ids.
func (s *DocumentStore) FindByIDs(_ context.Context, ids []string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Document
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if doc, ok := s.documents[id]; ok {
			result = append(result, doc)
		}
	}
	return result, nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListDocuments returns all documents ordered by ID.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Document
	for id := range s.documents {
		result = append(result, s.documents[id])
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DocumentID < result[j].DocumentID
	})
	return result, nil
}
