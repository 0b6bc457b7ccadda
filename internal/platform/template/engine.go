// Package template renders prompt templates for discharge note
// generation. Templates are plain text/template files loaded from a
// configurable directory.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

// Template file names expected in the templates directory.
const (
	SystemMessageTemplate   = "system_message.tmpl"
	DischargePromptTemplate = "discharge_prompt.tmpl"
)

// Common errors returned by the template engine.
var (
	// ErrTemplateNotFound is returned when a referenced template file
	// does not exist in the templates directory.
	ErrTemplateNotFound = errors.New("prompt template not found")

	// ErrRenderFailed is returned when a template exists but cannot be
	// parsed or executed against the provided context.
	ErrRenderFailed = errors.New("failed to render prompt template")
)

// Engine loads and renders prompt templates from a directory.
// An Engine is read-only after construction and safe for concurrent use.
type Engine struct {
	templatesDir string
	templates    map[string]*template.Template
}

// NewEngine creates an Engine backed by the given directory. Both prompt
// templates are loaded and parsed eagerly so a missing or broken
// template fails at startup rather than mid-request.
func NewEngine(templatesDir string) (*Engine, error) {
	engine := &Engine{
		templatesDir: templatesDir,
		templates:    make(map[string]*template.Template),
	}

	for _, name := range []string{SystemMessageTemplate, DischargePromptTemplate} {
		path := filepath.Join(templatesDir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
			}
			return nil, fmt.Errorf("%w: failed to read %s: %v", ErrTemplateNotFound, name, err)
		}

		tmpl, err := template.New(name).Option("missingkey=zero").Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrRenderFailed, name, err)
		}
		engine.templates[name] = tmpl
	}

	return engine, nil
}

// TemplatesDir returns the directory this engine loads templates from.
func (e *Engine) TemplatesDir() string {
	return e.templatesDir
}

// Render executes the named template with the provided context and
// returns the rendered text.
func (e *Engine) Render(name string, context map[string]any) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, context); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	return buf.String(), nil
}
