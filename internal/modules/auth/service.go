package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Service gates access behind a single shared access code. Deployments set
// either ACCESS_CODE (compared in constant time) or ACCESS_CODE_HASH
// (bcrypt); the hash wins when both are present.
type Service struct {
	store    *Store
	code     string
	codeHash string
}

func NewService(store *Store, code, codeHash string) *Service {
	return &Service{store: store, code: code, codeHash: codeHash}
}

func (s *Service) VerifyCode(code string) bool {
	if code == "" {
		return false
	}
	if s.codeHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.codeHash), []byte(code)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(s.code)) == 1
}

// Login validates the access code and mints a session token.
func (s *Service) Login(code string) (string, error) {
	if code == "" {
		return "", ErrMissingCode
	}
	if !s.VerifyCode(code) {
		return "", ErrInvalidCode
	}
	return s.store.Create()
}

func (s *Service) Logout(token string) bool {
	return s.store.Invalidate(token)
}

func (s *Service) Authenticated(token string) bool {
	return s.store.Validate(token)
}
