package domain

import "context"

// KVStore defines the interface for the durable key-value store that
// mirrors the in-memory collections. The store is never the source of
// truth while the process is running; it exists purely for restart
// recovery. Operations are local and treated as fast and non-cancellable,
// so there is no timeout or retry policy.
type KVStore interface {
	// Get retrieves the value stored under key.
	// The second return value is false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set fully overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Close releases the underlying store.
	Close() error
}
