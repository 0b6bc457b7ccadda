// Package config loads and validates application configuration from
// environment variables.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Paths  PathsConfig  `mapstructure:"paths"  validate:"required"`
}

// ServerConfig contains all HTTP-server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all language-model integration settings.
// The API key is required; the process must not start without it.
type LLMConfig struct {
	GeminiAPIKey      string  `mapstructure:"gemini_api_key" validate:"required"`
	ModelName         string  `mapstructure:"model_name"     validate:"required"`
	Temperature       float32 `mapstructure:"temperature"    validate:"gte=0,lte=2"`
	MaxTokens         int     `mapstructure:"max_tokens"     validate:"gt=0"`
	CustomInstruction string  `mapstructure:"custom_instruction"`
}

// PathsConfig contains the filesystem locations the service works with.
type PathsConfig struct {
	TemplatesDir string `mapstructure:"templates_dir" validate:"required"`
	OutputDir    string `mapstructure:"output_dir"    validate:"required"`
	UploadDir    string `mapstructure:"upload_dir"    validate:"required"`
}
