// Package records implements the durable string-keyed medium backing the
// record store. Each key holds one JSON-serializable value.
package records

import (
	"context"
)

// Repository describes operations over the string-keyed durable medium.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Get returns the raw value stored under key, or (nil, nil) when the
	// key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value in a
	// single atomic statement.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value stored under key. Deleting an absent key
	// is a no-op.
	Delete(ctx context.Context, key string) error

	// List returns all stored key/value pairs.
	List(ctx context.Context) (map[string][]byte, error)
}
