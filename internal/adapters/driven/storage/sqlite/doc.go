// Package sqlite provides a SQLite-based implementation of the document and
// discrepancy stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Both stores share one database connection:
//
//   - DocumentStore: parsed Document persistence, keyed by document id
//   - DiscrepancyStore: Discrepancy persistence, keyed by discrepancy id
//
// Writes are upserts, so re-running the pipeline over the same files
// replaces rows instead of duplicating them.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Header, body and discrepancy details are stored as JSON text.
//
// # Data Location
//
// By default, the database is stored at ~/.discrepancy-finder/data/discrepancies.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
