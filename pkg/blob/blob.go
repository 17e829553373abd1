// Package blob stores the original uploaded resume files.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("blob not found")

// Store keeps uploaded files by key.
type Store interface {
	// Put stores data under key and returns a URI describing its location.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	// Delete removes key; a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Check verifies the store is reachable.
	Check(ctx context.Context) error
}
