package session

import "errors"

var (
	// ErrSessionNotFound indicates the request carries no session token.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrInvalidSession indicates the token was present but failed verification.
	// It is joined with the underlying railscookie error.
	ErrInvalidSession = errors.New("session.invalid")
)
