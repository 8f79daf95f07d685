package service

import "errors"

var (
	// ErrNotFound means the drink is unknown upstream or absent from the
	// list, or the user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrTransport covers network failures, timeouts, an open circuit and
	// malformed upstream payloads.
	ErrTransport = errors.New("upstream unavailable")
	// ErrValidation is returned for empty or missing required input.
	ErrValidation = errors.New("invalid input")
	// ErrUnrecognized means a well-formed value fell outside the known
	// vocabulary, such as an unknown drink category or alcoholic status.
	ErrUnrecognized = errors.New("unrecognized value")

	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
