package services

import "errors"

var (
	// ErrSessionNotFound is returned when no session matches the given id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrDocumentNotFound is returned when no stored file matches the given id.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrInvalidMode is returned for mode values outside {"1", "2"}.
	ErrInvalidMode = errors.New("invalid mode: use 1 (Local) or 2 (Global)")
)
