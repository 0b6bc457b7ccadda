package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "system_message.tmpl"), []byte("system"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "discharge_prompt.tmpl"), []byte("prompt"), 0o644))
	return dir
}

func TestRunWithoutArguments(t *testing.T) {
	t.Setenv("PROVET_LLM_GEMINI_API_KEY", "test-api-key")

	assert.Equal(t, 1, run(nil))
}

func TestRunMissingAPIKey(t *testing.T) {
	t.Setenv("PROVET_LLM_GEMINI_API_KEY", "")

	assert.Equal(t, 1, run([]string{"consultation.json"}))
}

func TestRunMissingTemplates(t *testing.T) {
	t.Setenv("PROVET_LLM_GEMINI_API_KEY", "test-api-key")

	code := run([]string{
		"--template-dir", t.TempDir(),
		"consultation.json",
	})
	assert.Equal(t, 1, code)
}

func TestRunMissingInputFile(t *testing.T) {
	t.Setenv("PROVET_LLM_GEMINI_API_KEY", "test-api-key")

	code := run([]string{
		"--template-dir", writeTemplates(t),
		"--output-dir", t.TempDir(),
		filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Equal(t, 1, code)
}

func TestRunUnknownFlag(t *testing.T) {
	t.Setenv("PROVET_LLM_GEMINI_API_KEY", "test-api-key")

	assert.Equal(t, 1, run([]string{"--bogus", "consultation.json"}))
}
