package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/provetlabs/provet-api/internal/domain"
	"github.com/provetlabs/provet-api/internal/generation"
	"github.com/provetlabs/provet-api/internal/platform/template"
	"github.com/provetlabs/provet-api/internal/service"
	"github.com/provetlabs/provet-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"document not found", store.ErrDocumentNotFound, KindNotFound},
		{"decode failure", store.ErrDocumentDecode, KindDecode},
		{"invalid document shape", domain.ErrInvalidDocument, KindValidation},
		{"template missing", template.ErrTemplateNotFound, KindTemplate},
		{"render failure", template.ErrRenderFailed, KindTemplate},
		{"generation failure", generation.ErrGenerationFailed, KindGeneration},
		{"content blocked", generation.ErrContentBlocked, KindGeneration},
		{"invalid generator config", generation.ErrInvalidConfig, KindGeneration},
		{"note write failure", store.ErrNoteWrite, KindIO},
		{"unknown", errors.New("something else"), KindUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, ClassifyError(tc.err))
		})
	}
}

func TestClassifyErrorThroughProcessError(t *testing.T) {
	t.Parallel()

	// Classification must see through the façade's wrapping.
	wrapped := &service.ProcessError{
		Path: "/data/visit.json",
		Err:  fmt.Errorf("loading: %w", store.ErrDocumentNotFound),
	}

	assert.Equal(t, KindNotFound, ClassifyError(wrapped))
}
