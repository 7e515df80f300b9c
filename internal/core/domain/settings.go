package domain

// StorageBackend identifies where documents and discrepancies are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageMemory keeps everything in process memory.
	StorageMemory StorageBackend = "memory"

	// StorageSQLite uses an embedded SQLite database file.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMongo uses a MongoDB database.
	StorageMongo StorageBackend = "mongo"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageMemory, StorageSQLite, StorageMongo:
		return true
	default:
		return false
	}
}

// IsPersistent returns true if data survives the process.
func (b StorageBackend) IsPersistent() bool {
	return b == StorageSQLite || b == StorageMongo
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageMemory:
		return "In-memory (not persisted)"
	case StorageSQLite:
		return "SQLite (local file)"
	case StorageMongo:
		return "MongoDB"
	default:
		return "Unknown"
	}
}
