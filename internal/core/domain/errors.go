package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Parse Errors.

	// ErrMissingTable indicates the source file contains no table,
	// or the table lacks its head or body section.
	ErrMissingTable = errors.New("missing table")

	// ErrMissingTableID indicates the table has no identifying attribute.
	ErrMissingTableID = errors.New("missing table id")

	// ErrMalformedTable indicates the table structure cannot be read.
	ErrMalformedTable = errors.New("malformed table")

	// ErrInvalidCellValue indicates a row value is not a number or percentage.
	ErrInvalidCellValue = errors.New("invalid cell value")

	// Rule Errors.

	// ErrUnknownRule indicates a rule name with no registered builder.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidRuleParameter indicates a missing or mistyped rule parameter.
	ErrInvalidRuleParameter = errors.New("invalid rule parameter")

	// Storage Errors.

	// ErrUnsupportedBackend indicates an unknown storage backend.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")

	// ErrStoreUnavailable indicates the store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)
