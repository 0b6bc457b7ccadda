// Package store handles the file I/O side of discharge note
// generation: loading consultation documents, persisting note
// envelopes, and cleaning up per-request temporary files.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// NoteSuffix is appended to the input file's base name to form the
// output file name.
const NoteSuffix = "_discharge.json"

// NoteEnvelope is the persisted output format: a single-key JSON object
// holding the generated note text.
type NoteEnvelope struct {
	DischargeNote string `json:"discharge_note"`
}

// DocumentStore reads consultation documents and writes discharge note
// envelopes. It holds only immutable configuration and is safe for
// concurrent use across requests.
type DocumentStore struct {
	outputDir string
	logger    *slog.Logger
}

// NewDocumentStore creates a DocumentStore writing note envelopes under
// outputDir.
func NewDocumentStore(outputDir string, logger *slog.Logger) *DocumentStore {
	return &DocumentStore{
		outputDir: outputDir,
		logger:    logger,
	}
}

// LoadDocument reads and decodes a consultation document from disk.
// A missing file yields ErrDocumentNotFound; undecodable content yields
// ErrDocumentDecode.
func (s *DocumentStore) LoadDocument(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("failed to read consultation document %s: %w", path, err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocumentDecode, path, err)
	}

	return doc, nil
}

// WriteDocument serializes a consultation document to the given path.
// Used by the HTTP surface to stage JSON request bodies as per-request
// temporary files before handing them to the pipeline.
func (s *DocumentStore) WriteDocument(doc any, path string) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode consultation document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write consultation document %s: %w", path, err)
	}

	return nil
}

// StageUpload copies an uploaded file verbatim to the given path,
// creating the parent directory when needed.
func (s *DocumentStore) StageUpload(src io.Reader, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil {
			s.logger.Warn("failed to close staged upload", "path", path, "error", closeErr)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// SaveNote persists the generated note as a JSON envelope under the
// output directory, named after the input file's base name with the
// note suffix. The envelope is written with 4-space indentation for
// human readability. Returns the output path.
func (s *DocumentStore) SaveNote(note string, inputPath string) (string, error) {
	outputPath := s.NotePath(inputPath)

	raw, err := json.MarshalIndent(NoteEnvelope{DischargeNote: note}, "", "    ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoteWrite, err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoteWrite, err)
	}

	if err := os.WriteFile(outputPath, raw, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoteWrite, err)
	}

	return outputPath, nil
}

// ReadNote decodes a previously saved note envelope and returns the
// note text.
func (s *DocumentStore) ReadNote(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return "", fmt.Errorf("failed to read discharge note %s: %w", path, err)
	}

	var envelope NoteEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDocumentDecode, path, err)
	}

	return envelope.DischargeNote, nil
}

// NotePath returns the output path a note for the given input file
// would be saved to.
func (s *DocumentStore) NotePath(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(s.outputDir, stem+NoteSuffix)
}

// Cleanup removes per-request temporary files. It is best-effort:
// absent files are skipped silently and removal failures are logged,
// never surfaced to the caller.
func (s *DocumentStore) Cleanup(paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to clean up temporary file",
				"path", path,
				"error", err)
		}
	}
}
