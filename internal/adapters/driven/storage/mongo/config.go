package mongo

import "time"

// Config represents the configuration for the database connection.
type Config struct {
	ConnectionURL   string        // ConnectionURL is the full mongodb:// or mongodb+srv:// URL.
	Database        string        // Database is the database holding both collections.
	ConnectTimeout  time.Duration // ConnectTimeout is the timeout for connecting to the database.
	MaxPoolSize     uint64        // MaxPoolSize is the maximum number of connections in the connection pool.
	MinPoolSize     uint64        // MinPoolSize is the minimum number of connections in the connection pool.
	MaxConnIdleTime time.Duration // MaxConnIdleTime is the maximum time that a connection can remain idle.
	RetryAttempts   int           // RetryAttempts is the number of attempts to connect to the database.
	RetryInterval   time.Duration // RetryInterval is the interval between connection attempts.
}

// DefaultConfig returns a config with the default pool and retry settings.
func DefaultConfig(connectionURL, database string) Config {
	return Config{
		ConnectionURL:   connectionURL,
		Database:        database,
		ConnectTimeout:  10 * time.Second,
		MaxPoolSize:     100,
		MinPoolSize:     1,
		MaxConnIdleTime: 300 * time.Second,
		RetryAttempts:   3,
		RetryInterval:   5 * time.Second,
	}
}
