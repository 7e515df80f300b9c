package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/discrepancy-finder/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/discrepancy-finder/internal/core/domain"
	"github.com/custodia-labs/discrepancy-finder/internal/core/ports/driven"
)

// dbFileName is the database file inside the data directory.
const dbFileName = "discrepancies.db"

// Store is a SQLite-based storage that provides access to the
// document and discrepancy store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.discrepancy-finder/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".discrepancy-finder", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite allows a single writer; serialise access through one connection.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// DiscrepancyStore returns a DiscrepancyStore interface backed by this store.
func (s *Store) DiscrepancyStore() driven.DiscrepancyStore {
	return &discrepancyStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

const documentColumns = `id, title, header, body, footer, country_of_creation, date_of_creation`

// SaveDocuments upserts documents in one transaction.
func (s *documentStore) SaveDocuments(ctx context.Context, docs []domain.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (`+documentColumns+`, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			header = excluded.header,
			body = excluded.body,
			footer = excluded.footer,
			country_of_creation = excluded.country_of_creation,
			date_of_creation = excluded.date_of_creation,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := range docs {
		doc := &docs[i]
		headerJSON, err := json.Marshal(emptyIfNil(doc.Header))
		if err != nil {
			return 0, fmt.Errorf("marshalling header: %w", err)
		}
		bodyJSON, err := json.Marshal(emptyIfNil(doc.Body))
		if err != nil {
			return 0, fmt.Errorf("marshalling body: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, doc.DocumentID, doc.Title, string(headerJSON),
			string(bodyJSON), doc.Footer, doc.CountryOfCreation, formatTime(doc.DateOfCreation), now); err != nil {
			return 0, fmt.Errorf("saving document %s: %w", doc.DocumentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return len(docs), nil
}

// FindByIDs returns the stored documents matching ids, in the order of ids.
func (s *documentStore) FindByIDs(ctx context.Context, ids []string) ([]domain.Document, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]domain.Document, len(ids))
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		byID[doc.DocumentID] = *doc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	result := make([]domain.Document, 0, len(byID))
	for _, id := range ids {
		if doc, ok := byID[id]; ok {
			result = append(result, doc)
			delete(byID, id)
		}
	}
	return result, nil
}

// GetDocument retrieves a document by ID.
func (s *documentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents WHERE id = ?", id)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return doc, err
}

// ListDocuments returns all documents ordered by ID.
func (s *documentStore) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+documentColumns+" FROM documents ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

// ==================== Discrepancy Store ====================

// discrepancyStore implements driven.DiscrepancyStore.
type discrepancyStore struct {
	store *Store
}

var _ driven.DiscrepancyStore = (*discrepancyStore)(nil)

const discrepancyColumns = `id, document_id, discrepancy_type, location, details`

// SaveDiscrepancies upserts discrepancies in one transaction.
func (s *discrepancyStore) SaveDiscrepancies(ctx context.Context, discrepancies []domain.Discrepancy) (int, error) {
	if len(discrepancies) == 0 {
		return 0, nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO discrepancies (`+discrepancyColumns+`, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document_id = excluded.document_id,
			discrepancy_type = excluded.discrepancy_type,
			location = excluded.location,
			details = excluded.details,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i := range discrepancies {
		d := &discrepancies[i]
		detailsJSON, err := json.Marshal(d.Details)
		if err != nil {
			return 0, fmt.Errorf("marshalling details: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, d.DiscrepancyID, d.DocumentID, d.DiscrepancyType,
			string(d.Location), string(detailsJSON), now); err != nil {
			return 0, fmt.Errorf("saving discrepancy %s: %w", d.DiscrepancyID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return len(discrepancies), nil
}

// ListDiscrepancies returns discrepancies for a document, or all when
// documentID is empty, ordered by ID.
func (s *discrepancyStore) ListDiscrepancies(ctx context.Context, documentID string) ([]domain.Discrepancy, error) {
	query := "SELECT " + discrepancyColumns + " FROM discrepancies"
	var args []any
	if documentID != "" {
		query += " WHERE document_id = ?"
		args = append(args, documentID)
	}
	query += " ORDER BY id"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying discrepancies: %w", err)
	}
	defer rows.Close()

	var result []domain.Discrepancy //nolint:prealloc // size unknown from query
	for rows.Next() {
		var d domain.Discrepancy
		var location, detailsJSON string
		if err := rows.Scan(&d.DiscrepancyID, &d.DocumentID, &d.DiscrepancyType,
			&location, &detailsJSON); err != nil {
			return nil, fmt.Errorf("scanning discrepancy: %w", err)
		}
		d.Location = domain.Location(location)
		if err := json.Unmarshal([]byte(detailsJSON), &d.Details); err != nil {
			return nil, fmt.Errorf("unmarshaling details: %w", err)
		}
		result = append(result, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating discrepancies: %w", err)
	}
	return result, nil
}

// ==================== Helpers ====================

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDocument scans a document row selected with documentColumns.
// A missing row is returned as sql.ErrNoRows.
func scanDocument(row scanner) (*domain.Document, error) {
	var doc domain.Document
	var title, footer, country, date sql.NullString
	var headerJSON, bodyJSON string

	if err := row.Scan(&doc.DocumentID, &title, &headerJSON, &bodyJSON,
		&footer, &country, &date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	doc.Title = nullString(title)
	doc.Footer = nullString(footer)
	doc.CountryOfCreation = nullString(country)

	if err := json.Unmarshal([]byte(headerJSON), &doc.Header); err != nil {
		return nil, fmt.Errorf("unmarshaling header: %w", err)
	}
	if err := json.Unmarshal([]byte(bodyJSON), &doc.Body); err != nil {
		return nil, fmt.Errorf("unmarshaling body: %w", err)
	}

	if date.Valid {
		t, err := time.Parse(time.RFC3339Nano, date.String)
		if err != nil {
			return nil, fmt.Errorf("parsing date_of_creation: %w", err)
		}
		doc.DateOfCreation = &t
	}

	return &doc, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// formatTime renders an optional time for a TEXT column.
func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

// emptyIfNil keeps JSON columns as [] rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
