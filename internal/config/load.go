package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables with the PROVET_
// prefix, applies defaults, and validates the result. Environment
// variables map to config keys with underscores, e.g.
// PROVET_LLM_GEMINI_API_KEY -> llm.gemini_api_key.
// Returns a populated Config or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 800)
	v.SetDefault("llm.custom_instruction", "")
	v.SetDefault("paths.templates_dir", "templates")
	v.SetDefault("paths.output_dir", "solution")
	v.SetDefault("paths.upload_dir", "temp_uploads")

	v.SetEnvPrefix("PROVET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys through
	// Unmarshal, so bind each known key explicitly.
	keys := []string{
		"server.port", "server.log_level",
		"llm.gemini_api_key", "llm.model_name", "llm.temperature",
		"llm.max_tokens", "llm.custom_instruction",
		"paths.templates_dir", "paths.output_dir", "paths.upload_dir",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
