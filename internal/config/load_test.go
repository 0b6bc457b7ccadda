package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for a test and returns a cleanup
// function restoring the previous values.
func setupEnv(t *testing.T, envVars map[string]string) func() {
	t.Helper()

	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		require.NoError(t, os.Setenv(name, value), "failed to set %s", name)
	}

	return func() {
		for name, value := range originalValues {
			if value == "" {
				_ = os.Unsetenv(name)
			} else {
				_ = os.Setenv(name, value)
			}
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"PROVET_LLM_GEMINI_API_KEY": "test-api-key",
		"PROVET_SERVER_PORT":        "",
		"PROVET_SERVER_LOG_LEVEL":   "",
		"PROVET_LLM_MODEL_NAME":     "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 800, cfg.LLM.MaxTokens)
	assert.Equal(t, "templates", cfg.Paths.TemplatesDir)
	assert.Equal(t, "solution", cfg.Paths.OutputDir)
	assert.Equal(t, "temp_uploads", cfg.Paths.UploadDir)
}

func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"PROVET_LLM_GEMINI_API_KEY":     "test-api-key",
		"PROVET_SERVER_PORT":            "9090",
		"PROVET_SERVER_LOG_LEVEL":       "debug",
		"PROVET_LLM_MODEL_NAME":         "gemini-2.5-pro",
		"PROVET_LLM_TEMPERATURE":        "0.2",
		"PROVET_LLM_MAX_TOKENS":         "1200",
		"PROVET_LLM_CUSTOM_INSTRUCTION": "Keep the tone warm.",
		"PROVET_PATHS_OUTPUT_DIR":       "/tmp/notes",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 1200, cfg.LLM.MaxTokens)
	assert.Equal(t, "Keep the tone warm.", cfg.LLM.CustomInstruction)
	assert.Equal(t, "/tmp/notes", cfg.Paths.OutputDir)
}

func TestLoadMissingAPIKeyFails(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"PROVET_LLM_GEMINI_API_KEY": "",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err, "startup must fail without the API credential")
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadInvalidValues(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "invalid log level",
			envVars: map[string]string{
				"PROVET_LLM_GEMINI_API_KEY": "test-api-key",
				"PROVET_SERVER_LOG_LEVEL":   "verbose",
			},
		},
		{
			name: "port out of range",
			envVars: map[string]string{
				"PROVET_LLM_GEMINI_API_KEY": "test-api-key",
				"PROVET_SERVER_PORT":        "70000",
			},
		},
		{
			name: "non-positive max tokens",
			envVars: map[string]string{
				"PROVET_LLM_GEMINI_API_KEY": "test-api-key",
				"PROVET_LLM_MAX_TOKENS":     "0",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupEnv(t, tc.envVars)
			defer cleanup()

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
