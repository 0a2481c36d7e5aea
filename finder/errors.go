package finder

import "errors"

// Sentinel errors for package finder.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Configuration errors
	ErrInvalidDate = errors.New("invalid date format")

	// Traversal errors
	ErrInvalidRoot = errors.New("invalid root")
)
