package errors

import "errors"

var (
	// ErrNotFound signals that a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden signals that the actor does not own the referenced entity.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidStateTransition signals an operation attempted from a state
	// that disallows it, including concurrent processing of the same entity.
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrValidation signals malformed or out-of-range request data.
	ErrValidation = errors.New("validation failed")
	// ErrAlreadyExists signals a uniqueness conflict.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
