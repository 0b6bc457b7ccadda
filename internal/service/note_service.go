// Package service provides the application-level orchestration for
// discharge note generation.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/provetlabs/provet-api/internal/domain"
	"github.com/provetlabs/provet-api/internal/generation"
	"github.com/provetlabs/provet-api/internal/platform/template"
)

// DocumentStore defines the storage collaborator the façade needs:
// loading raw consultation documents and persisting note envelopes.
type DocumentStore interface {
	// LoadDocument reads and decodes a consultation document.
	LoadDocument(path string) (any, error)

	// SaveNote persists the note envelope derived from the given input
	// file and returns the output path.
	SaveNote(note string, inputPath string) (string, error)
}

// TemplateEngine renders a named prompt template with a context.
type TemplateEngine interface {
	Render(name string, context map[string]any) (string, error)
}

// NoteService is the generation façade: one operation turning a
// consultation document on disk into a persisted discharge note.
type NoteService interface {
	// ProcessFile runs the full pipeline for the document at path:
	// load, map, project, render prompts, call the model, persist.
	// Returns the path of the saved note envelope.
	ProcessFile(ctx context.Context, path string) (string, error)
}

// ProcessError wraps a pipeline failure with the input it was
// processing. The underlying step error stays reachable through
// errors.Is/errors.As so boundaries can match the taxonomy sentinels.
type ProcessError struct {
	// Path identifies the consultation document being processed.
	Path string
	// Err is the underlying step error.
	Err error
}

// Error implements the error interface for ProcessError.
func (e *ProcessError) Error() string {
	return fmt.Sprintf("error processing file %s: %v", e.Path, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// noteService is the default NoteService implementation. It holds only
// read-only collaborators, so one instance serves concurrent requests.
type noteService struct {
	store             DocumentStore
	engine            TemplateEngine
	generator         generation.Generator
	customInstruction string
	logger            *slog.Logger
}

// NewNoteService creates a NoteService with the given collaborators.
// customInstruction, when non-empty, is exposed to the prompt templates
// as the custom_instruction slot.
func NewNoteService(
	store DocumentStore,
	engine TemplateEngine,
	generator generation.Generator,
	customInstruction string,
	logger *slog.Logger,
) NoteService {
	return &noteService{
		store:             store,
		engine:            engine,
		generator:         generator,
		customInstruction: customInstruction,
		logger:            logger,
	}
}

func (s *noteService) ProcessFile(ctx context.Context, path string) (string, error) {
	s.logger.InfoContext(ctx, "processing consultation document", "path", path)

	doc, err := s.store.LoadDocument(path)
	if err != nil {
		return "", &ProcessError{Path: path, Err: err}
	}

	record, err := domain.RecordFromDocument(doc)
	if err != nil {
		return "", &ProcessError{Path: path, Err: err}
	}

	templateContext := record.TemplateContext()
	templateContext["custom_instruction"] = s.customInstruction

	systemMessage, err := s.engine.Render(template.SystemMessageTemplate, templateContext)
	if err != nil {
		return "", &ProcessError{Path: path, Err: err}
	}

	prompt, err := s.engine.Render(template.DischargePromptTemplate, templateContext)
	if err != nil {
		return "", &ProcessError{Path: path, Err: err}
	}

	note, err := s.generator.GenerateNote(ctx, systemMessage, prompt)
	if err != nil {
		return "", &ProcessError{Path: path, Err: err}
	}

	outputPath, err := s.store.SaveNote(note, path)
	if err != nil {
		return "", &ProcessError{Path: path, Err: err}
	}

	s.logger.InfoContext(ctx, "discharge note saved",
		"path", path,
		"output_path", outputPath)

	return outputPath, nil
}
