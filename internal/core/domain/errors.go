package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSettings indicates the stored configuration cannot be used.
	ErrInvalidSettings = errors.New("invalid settings")

	// Fetch Errors.

	// ErrFetchFailed indicates the article could not be retrieved.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrUnexpectedStatus indicates the server answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrBodyTooLarge indicates the response body exceeded the size cap.
	ErrBodyTooLarge = errors.New("response body too large")

	// Extraction Errors.

	// ErrSectionNotFound indicates a section boundary heading is missing
	// from the document, or the end heading does not follow the start heading.
	ErrSectionNotFound = errors.New("section not found")
)
