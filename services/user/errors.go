package user

import "errors"

var (
	// ErrEmailTaken signals a registration attempt with an email that is
	// already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials signals a failed login. Deliberately the same
	// for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken signals a missing, malformed, expired or revoked
	// bearer token.
	ErrInvalidToken = errors.New("invalid token")
)
