package auth

import "errors"

var (
	ErrMissingCode = errors.New("Bitte gib einen Zugangscode ein")
	ErrInvalidCode = errors.New("Ungültiger Zugangscode")
)
