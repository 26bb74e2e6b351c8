package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Set(ctx, "cart", `[{"quantity":1}]`))

	val, err := s.Get(ctx, "cart")
	assert.NoError(t, err)
	assert.Equal(t, `[{"quantity":1}]`, val)

	// Overwrite replaces the value completely.
	assert.NoError(t, s.Set(ctx, "cart", "[]"))
	val, err = s.Get(ctx, "cart")
	assert.NoError(t, err)
	assert.Equal(t, "[]", val)

	assert.NoError(t, s.Delete(ctx, "cart"))
	_, err = s.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete(ctx, "cart"))
}
