package repository

import "context"

// KeyValueStore is the local persisted key-value medium behind the game state store.
// Implementations must make every Set/Delete durable before returning.
type KeyValueStore interface {
	// Get returns the stored value; found is false when the key is absent
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set replaces the value for key
	Set(ctx context.Context, key, value string) error

	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backend is usable
	Ping(ctx context.Context) error

	// Close releases backend resources
	Close() error
}
