package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// Collection names.
const (
	DocumentsCollection     = "documents"
	DiscrepanciesCollection = "discrepancies"
)

// Store provides the document and discrepancy stores over one database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to the server described by cfg and ensures indexes.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Database == "" {
		return nil, ErrMissingDatabase
	}

	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s := &Store{client: client, db: client.Database(cfg.Database)}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping verifies connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return Healthcheck(s.client)(ctx)
}

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{coll: s.db.Collection(DocumentsCollection)}
}

// DiscrepancyStore returns a DiscrepancyStore interface backed by this store.
func (s *Store) DiscrepancyStore() driven.DiscrepancyStore {
	return &discrepancyStore{coll: s.db.Collection(DiscrepanciesCollection)}
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(DiscrepanciesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "document_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating discrepancy index: %w", err)
	}
	return nil
}

// upsertModel replaces the record with the given id, inserting it when absent.
func upsertModel(id string, record any) mongo.WriteModel {
	return mongo.NewReplaceOneModel().
		SetFilter(bson.D{{Key: "_id", Value: id}}).
		SetReplacement(record).
		SetUpsert(true)
}

var byID = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

// ==================== Document Store ====================

type documentStore struct {
	coll *mongo.Collection
}

var _ driven.DocumentStore = (*documentStore)(nil)

// SaveDocuments upserts documents by document id.
func (s *documentStore) SaveDocuments(ctx context.Context, docs []domain.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(docs))
	for i := range docs {
		models = append(models, upsertModel(docs[i].DocumentID, toDocumentRecord(&docs[i])))
	}

	if _, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return 0, fmt.Errorf("saving documents: %w", err)
	}
	return len(docs), nil
}

// FindByIDs returns the stored documents matching ids, in the order of ids.
func (s *documentStore) FindByIDs(ctx context.Context, ids []string) ([]domain.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	records, err := s.find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, err
	}

	found := make(map[string]domain.Document, len(records))
	for i := range records {
		found[records[i].ID] = records[i].toDomain()
	}

	result := make([]domain.Document, 0, len(found))
	for _, id := range ids {
		if doc, ok := found[id]; ok {
			result = append(result, doc)
			delete(found, id)
		}
	}
	return result, nil
}

// GetDocument retrieves a document by ID.
func (s *documentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	var record documentRecord
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding document: %w", err)
	}
	doc := record.toDomain()
	return &doc, nil
}

// ListDocuments returns all documents ordered by ID.
func (s *documentStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	records, err := s.find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []domain.Document //nolint:prealloc // nil for no results
	for i := range records {
		docs = append(docs, records[i].toDomain())
	}
	return docs, nil
}

func (s *documentStore) find(ctx context.Context, filter bson.D) ([]documentRecord, error) {
	cursor, err := s.coll.Find(ctx, filter, byID)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	var records []documentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decoding documents: %w", err)
	}
	return records, nil
}

// ==================== Discrepancy Store ====================

type discrepancyStore struct {
	coll *mongo.Collection
}

var _ driven.DiscrepancyStore = (*discrepancyStore)(nil)

// SaveDiscrepancies upserts discrepancies by discrepancy id.
func (s *discrepancyStore) SaveDiscrepancies(ctx context.Context, discrepancies []domain.Discrepancy) (int, error) {
	if len(discrepancies) == 0 {
		return 0, nil
	}

	models := make([]mongo.WriteModel, 0, len(discrepancies))
	for i := range discrepancies {
		models = append(models, upsertModel(discrepancies[i].DiscrepancyID, toDiscrepancyRecord(&discrepancies[i])))
	}

	if _, err := s.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return 0, fmt.Errorf("saving discrepancies: %w", err)
	}
	return len(discrepancies), nil
}

// ListDiscrepancies returns discrepancies for a document, or all when
// documentID is empty, ordered by ID.
func (s *discrepancyStore) ListDiscrepancies(ctx context.Context, documentID string) ([]domain.Discrepancy, error) {
	filter := bson.D{}
	if documentID != "" {
		filter = bson.D{{Key: "document_id", Value: documentID}}
	}

	cursor, err := s.coll.Find(ctx, filter, byID)
	if err != nil {
		return nil, fmt.Errorf("querying discrepancies: %w", err)
	}
	var records []discrepancyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decoding discrepancies: %w", err)
	}

	var result []domain.Discrepancy //nolint:prealloc // nil for no results
	for i := range records {
		result = append(result, records[i].toDomain())
	}
	return result, nil
}
