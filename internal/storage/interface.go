package storage

import "context"

// Store is a string key-value store that outlives the process. It plays the
// part of the browser's local storage: values are opaque strings owned by
// the caller, and every Set is durable once it returns.
type Store interface {
	// Get returns the value stored under key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
