package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyTable indicates parsing succeeded structurally but produced
	// zero rows. The message doubles as the user-visible text.
	ErrEmptyTable = errors.New("no valid table data found")

	// ErrParse indicates malformed input or an unexpected shape. The
	// underlying cause is attached by wrapping.
	ErrParse = errors.New("parse failed")

	// ErrSave indicates the host client threw during persistence.
	ErrSave = errors.New("save failed")

	// ErrHostUnavailable indicates no host client is attached or the host
	// has not signalled readiness.
	ErrHostUnavailable = errors.New("host client unavailable")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
