package store

import "errors"

// Common errors returned by the document store.
var (
	// ErrDocumentNotFound is returned when a consultation document does
	// not exist at the given path.
	ErrDocumentNotFound = errors.New("consultation document not found")

	// ErrDocumentDecode is returned when a consultation document exists
	// but is not valid JSON.
	ErrDocumentDecode = errors.New("consultation document contains invalid JSON")

	// ErrNoteWrite is returned when the discharge note envelope cannot
	// be persisted.
	ErrNoteWrite = errors.New("failed to save discharge note")
)
