// Package config contains configuration loading and compile-time defaults
// for flightdb.
package config

import "time"

// =============================================================================
// DATABASE DEFAULTS
// =============================================================================

const (
	// DBURI is the store location used when nothing else is configured
	DBURI = "sqlite:///data/flights.sqlite3"

	// DBMaxOpenConns keeps the whole session on one connection
	DBMaxOpenConns = 1

	// DBConnMaxLifetime is how long a connection can be reused (0 = forever)
	DBConnMaxLifetime = 0 * time.Minute

	// DBConnectTimeout bounds the initial ping
	DBConnectTimeout = 10 * time.Second

	// DBQueryTimeout bounds a single query (0 = wait for the store)
	DBQueryTimeout = 0 * time.Second
)

// =============================================================================
// INPUT VALIDATION
// =============================================================================

const (
	// IATALength is the length of an airport code
	IATALength = 3

	// DateLayout is the accepted date input format (DD/MM/YYYY; leading zeros optional)
	DateLayout = "2/1/2006"
)

// =============================================================================
// ENVIRONMENT
// =============================================================================

const (
	// EnvPrefix prefixes every environment override (FLIGHTDB_DATABASE_URI)
	EnvPrefix = "FLIGHTDB"

	// ConfigName is the optional config file looked up in the working directory
	ConfigName = "flightdb"

	// LogLevel is the default log level; --verbose switches to debug
	LogLevel = "warn"
)
