// Package storage provides the key-value persistence backing cart
// records. Values are opaque strings; callers decide the encoding.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// Store is a minimal key-value store. All operations may fail (store
// unavailable, capacity exceeded); failures are returned as errors,
// never panics, so callers can degrade gracefully.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
