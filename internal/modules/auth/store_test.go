package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndValidate(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()

	token, err := store.Create()
	require.NoError(t, err)
	assert.Len(t, token, 64, "32 random bytes, hex encoded")
	assert.True(t, store.Validate(token))
	assert.Equal(t, 1, store.Len())
}

func TestStoreRejectsUnknownToken(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()

	assert.False(t, store.Validate(""))
	assert.False(t, store.Validate("deadbeef"))
}

func TestStoreExpiresSessions(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	defer store.Close()

	token, err := store.Create()
	require.NoError(t, err)
	require.True(t, store.Validate(token))

	time.Sleep(20 * time.Millisecond)

	assert.False(t, store.Validate(token))
	assert.Equal(t, 0, store.Len(), "expired session is dropped on validation")
}

func TestStoreInvalidate(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()

	token, err := store.Create()
	require.NoError(t, err)

	assert.True(t, store.Invalidate(token))
	assert.False(t, store.Invalidate(token), "second invalidation is a no-op")
	assert.False(t, store.Validate(token))
}

func TestStoreTokensAreUnique(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		token, err := store.Create()
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}
