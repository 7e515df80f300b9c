package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
)

func TestDocumentService_NilStore(t *testing.T) {
	svc := NewDocumentService(nil)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.Get(context.Background(), "doc-1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestDocumentService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	_, err := store.SaveDocuments(ctx, []domain.Document{{DocumentID: "b"}, {DocumentID: "a"}})
	require.NoError(t, err)

	svc := NewDocumentService(store)

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, domain.IDs(docs))

	doc, err := svc.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", doc.DocumentID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDiscrepancyService_List(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDiscrepancyStore()
	_, err := store.SaveDiscrepancies(ctx, []domain.Discrepancy{
		{DiscrepancyID: "aTitleLength", DocumentID: "a", DiscrepancyType: "TitleLength"},
		{DiscrepancyID: "berror", DocumentID: "b", DiscrepancyType: domain.DiscrepancyTypeError},
	})
	require.NoError(t, err)

	svc := NewDiscrepancyService(store)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	forB, err := svc.List(ctx, "b")
	require.NoError(t, err)
	require.Len(t, forB, 1)
	assert.Equal(t, "berror", forB[0].DiscrepancyID)

	_, err = NewDiscrepancyService(nil).List(ctx, "")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
