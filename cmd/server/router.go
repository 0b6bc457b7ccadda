package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/provetlabs/provet-api/internal/api"
	apiMiddleware "github.com/provetlabs/provet-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Permissive CORS so browser clients can reach the API directly.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	noteHandler := api.NewNoteHandler(
		app.noteService,
		app.documentStore,
		app.config.Paths.UploadDir,
		app.logger,
	)

	r.Get("/", noteHandler.Health)
	r.Post("/generate", noteHandler.GenerateNote)
	r.Post("/upload", noteHandler.UploadConsultationFile)

	return r
}
