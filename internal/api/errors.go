package api

import (
	"errors"

	"github.com/provetlabs/provet-api/internal/domain"
	"github.com/provetlabs/provet-api/internal/generation"
	"github.com/provetlabs/provet-api/internal/platform/template"
	"github.com/provetlabs/provet-api/internal/store"
)

// ErrorKind names one entry of the pipeline error taxonomy. Every
// façade error is classified explicitly instead of being caught
// generically, so logs and metrics can tell the failure modes apart
// even though they all map to the same HTTP status.
type ErrorKind string

// Pipeline error kinds.
const (
	KindNotFound   ErrorKind = "not_found"
	KindDecode     ErrorKind = "decode"
	KindValidation ErrorKind = "validation"
	KindTemplate   ErrorKind = "template"
	KindGeneration ErrorKind = "generation"
	KindIO         ErrorKind = "io"
	KindUnknown    ErrorKind = "unknown"
)

// ClassifyError matches err against the pipeline error taxonomy.
func ClassifyError(err error) ErrorKind {
	switch {
	case errors.Is(err, store.ErrDocumentNotFound):
		return KindNotFound

	case errors.Is(err, store.ErrDocumentDecode):
		return KindDecode

	case errors.Is(err, domain.ErrInvalidDocument):
		return KindValidation

	case errors.Is(err, template.ErrTemplateNotFound),
		errors.Is(err, template.ErrRenderFailed):
		return KindTemplate

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrInvalidConfig):
		return KindGeneration

	case errors.Is(err, store.ErrNoteWrite):
		return KindIO

	default:
		return KindUnknown
	}
}
