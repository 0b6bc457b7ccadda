// Package generation defines the boundary to the language-model service
// used for discharge note generation.
package generation

import "errors"

// Common errors returned by Generator implementations.
var (
	// ErrGenerationFailed is returned when the model call fails or the
	// response carries no usable text.
	ErrGenerationFailed = errors.New("failed to generate discharge note")

	// ErrContentBlocked is returned when the model refuses the request
	// due to safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is
	// invalid (missing API key, model name or prompt parameters).
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
