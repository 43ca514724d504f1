package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyCodePlaintext(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()
	svc := NewService(store, "geheim", "")

	assert.True(t, svc.VerifyCode("geheim"))
	assert.False(t, svc.VerifyCode("falsch"))
	assert.False(t, svc.VerifyCode(""))
}

func TestVerifyCodeBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("geheim"), bcrypt.MinCost)
	require.NoError(t, err)

	store := NewStore(time.Hour)
	defer store.Close()

	// The hash takes precedence even when a plaintext code is also set.
	svc := NewService(store, "anderer-code", string(hash))

	assert.True(t, svc.VerifyCode("geheim"))
	assert.False(t, svc.VerifyCode("anderer-code"))
}

func TestLoginMintsSession(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()
	svc := NewService(store, "geheim", "")

	token, err := svc.Login("geheim")
	require.NoError(t, err)
	assert.True(t, svc.Authenticated(token))

	assert.True(t, svc.Logout(token))
	assert.False(t, svc.Authenticated(token))
}

func TestLoginErrors(t *testing.T) {
	store := NewStore(time.Hour)
	defer store.Close()
	svc := NewService(store, "geheim", "")

	_, err := svc.Login("")
	assert.ErrorIs(t, err, ErrMissingCode)

	_, err = svc.Login("falsch")
	assert.ErrorIs(t, err, ErrInvalidCode)
}
