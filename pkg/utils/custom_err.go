package utils

import "errors"

var (
	// ErrConnection is returned when a store backend is unreachable or
	// answered a read with a non-success status or a malformed payload.
	ErrConnection = errors.New("store backend unreachable or returned an invalid response")

	// ErrWrite is returned when an insert, delete or clear could not be
	// durably persisted.
	ErrWrite = errors.New("write could not be persisted")

	// ErrUnsupportedOperation is returned when the active backend has no
	// implementation for the requested operation (notably bulk clear on
	// the remote backend). Distinct from ErrWrite so callers can explain
	// "not configured" instead of "try again".
	ErrUnsupportedOperation = errors.New("operation not supported by the active store backend")

	ErrDuplicateTicket = errors.New("a survey for this ticket already exists")
	ErrValidation      = errors.New("invalid survey submission")
	ErrRecordNotFound  = errors.New("survey record not found")
	ErrInvalidPassword = errors.New("invalid admin password")
)
