// Package api implements the HTTP surface for discharge note
// generation.
package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/provetlabs/provet-api/internal/api/shared"
	"github.com/provetlabs/provet-api/internal/redact"
	"github.com/provetlabs/provet-api/internal/service"
)

// DocumentStaging defines the file staging the HTTP surface needs: it
// writes request bodies and uploads into per-request temporary files,
// reads generated envelopes back, and disposes of both afterwards.
type DocumentStaging interface {
	WriteDocument(doc any, path string) error
	StageUpload(src io.Reader, path string) error
	ReadNote(path string) (string, error)
	NotePath(inputPath string) string
	Cleanup(paths ...string)
}

// GenerateNoteRequest is the request body for POST /generate.
type GenerateNoteRequest struct {
	ConsultationData map[string]any `json:"consultation_data" validate:"required"`
}

// DischargeNoteResponse is the success response for both generation
// endpoints.
type DischargeNoteResponse struct {
	DischargeNote string `json:"discharge_note"`
}

// HealthResponse is the response for the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// NoteHandler handles the discharge note HTTP endpoints.
type NoteHandler struct {
	notes     service.NoteService
	staging   DocumentStaging
	uploadDir string
	logger    *slog.Logger
}

// NewNoteHandler creates a NoteHandler. uploadDir is where per-request
// temporary input files are staged.
func NewNoteHandler(
	notes service.NoteService,
	staging DocumentStaging,
	uploadDir string,
	logger *slog.Logger,
) *NoteHandler {
	return &NoteHandler{
		notes:     notes,
		staging:   staging,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// Health handles GET / requests.
func (h *NoteHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "API is up and running"})
}

// GenerateNote handles POST /generate requests: the consultation
// document arrives as a JSON body, is staged as a temporary file, run
// through the pipeline, and both the staged input and the generated
// output are removed before returning.
func (h *NoteHandler) GenerateNote(w http.ResponseWriter, r *http.Request) {
	var req GenerateNoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "consultation_data is required")
		return
	}

	inputPath := filepath.Join(h.uploadDir, fmt.Sprintf("consultation_%s.json", uuid.New()))
	if err := h.staging.WriteDocument(req.ConsultationData, inputPath); err != nil {
		h.respondPipelineError(w, r, err)
		return
	}
	// Remove both files on every exit path; Cleanup tolerates an output
	// that was never created.
	defer h.staging.Cleanup(inputPath, h.staging.NotePath(inputPath))

	h.runPipeline(w, r, inputPath)
}

// UploadConsultationFile handles POST /upload requests: a multipart
// file field carrying a consultation document. Non-.json filenames are
// rejected before the pipeline is invoked.
func (h *NoteHandler) UploadConsultationFile(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file", "error", closeErr)
		}
	}()

	if !strings.HasSuffix(header.Filename, ".json") {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Only JSON files are supported")
		return
	}

	h.logger.InfoContext(r.Context(), "received file upload", "filename", header.Filename)

	inputPath := filepath.Join(h.uploadDir, filepath.Base(header.Filename))
	if stageErr := h.staging.StageUpload(file, inputPath); stageErr != nil {
		h.respondPipelineError(w, r, stageErr)
		return
	}
	defer h.staging.Cleanup(inputPath, h.staging.NotePath(inputPath))

	h.runPipeline(w, r, inputPath)
}

// runPipeline executes the façade for a staged input file and writes
// the success or error response.
func (h *NoteHandler) runPipeline(w http.ResponseWriter, r *http.Request, inputPath string) {
	outputPath, err := h.notes.ProcessFile(r.Context(), inputPath)
	if err != nil {
		h.respondPipelineError(w, r, err)
		return
	}

	note, err := h.staging.ReadNote(outputPath)
	if err != nil {
		h.respondPipelineError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DischargeNoteResponse{DischargeNote: note})
}

// respondPipelineError classifies the failure, logs the redacted cause,
// and returns the message to the client in the detail field. Every
// pipeline failure is a 500 to the caller.
func (h *NoteHandler) respondPipelineError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "discharge note generation failed",
		"error_kind", string(ClassifyError(err)),
		"error", redact.Error(err),
		"trace_id", shared.GetTraceID(r.Context()))

	shared.RespondWithError(w, r, http.StatusInternalServerError, err.Error())
}
