package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidDocument is returned when a consultation document is not
	// a key-value mapping at the top level and therefore cannot be mapped
	// into a ConsultationRecord.
	ErrInvalidDocument = errors.New("consultation document is not a JSON object")
)
