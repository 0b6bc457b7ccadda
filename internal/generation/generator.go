package generation

import "context"

// Generator defines the interface for producing a discharge note from
// rendered prompt text. It is the boundary between the application core
// and the external LLM service: the core renders the prompts, the
// implementation owns the transport.
type Generator interface {
	// GenerateNote sends the system instruction and user prompt to the
	// language model and returns the generated discharge note text.
	//
	// The call is made exactly once; callers must not expect retries.
	// Returns an error wrapping one of the sentinels in errors.go if the
	// model call fails or produces unusable output.
	GenerateNote(ctx context.Context, systemMessage, prompt string) (string, error)
}
