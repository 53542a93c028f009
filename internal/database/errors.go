package database

import "errors"

// Error kinds returned by the database package
var (
	// ErrConnection means the store could not be reached or the URI is unusable.
	// It is fatal: nothing works without a store.
	ErrConnection = errors.New("database connection failed")

	// ErrUnknownQuery means a QueryID has no template in the catalog
	ErrUnknownQuery = errors.New("unknown query")

	// ErrMissingParam means a template placeholder had no bound value
	ErrMissingParam = errors.New("missing query parameter")

	// ErrClosed means the gateway was used after Close
	ErrClosed = errors.New("gateway is closed")
)

// IsConnectionError reports whether err is a connection failure
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}
