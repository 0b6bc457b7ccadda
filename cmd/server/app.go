package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/provetlabs/provet-api/internal/config"
	"github.com/provetlabs/provet-api/internal/platform/gemini"
	"github.com/provetlabs/provet-api/internal/platform/template"
	"github.com/provetlabs/provet-api/internal/service"
	"github.com/provetlabs/provet-api/internal/store"
)

// application holds the wired dependencies for the HTTP server. All
// members are read-only after construction, so one application value
// serves concurrent requests.
type application struct {
	config        *config.Config
	logger        *slog.Logger
	documentStore *store.DocumentStore
	noteService   service.NoteService
}

// newApplication constructs the dependency graph: template engine,
// Gemini generator, document store and the note service façade.
// Configuration problems (missing API key, missing templates) surface
// here, before the server starts accepting requests.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	engine, err := template.NewEngine(cfg.Paths.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	documentStore := store.NewDocumentStore(cfg.Paths.OutputDir, logger)

	noteService := service.NewNoteService(
		documentStore,
		engine,
		generator,
		cfg.LLM.CustomInstruction,
		logger,
	)

	return &application{
		config:        cfg,
		logger:        logger,
		documentStore: documentStore,
		noteService:   noteService,
	}, nil
}
