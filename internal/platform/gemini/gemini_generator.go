// Package gemini implements the generation.Generator interface using
// Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/provetlabs/provet-api/internal/config"
	"github.com/provetlabs/provet-api/internal/generation"
	"google.golang.org/genai"
)

// GeminiGenerator implements generation.Generator by sending the
// rendered prompts to the Gemini API. Each request is a single attempt
// with no retry: a failed model call surfaces immediately.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the Gemini API client for making requests
	client *genai.Client
}

// NewGeminiGenerator creates a new GeminiGenerator with the provided
// dependencies. It validates the configuration and initializes the API
// client; an empty API key or model name is an ErrInvalidConfig.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger: logger,
		config: cfg,
		client: client,
	}, nil
}

// GenerateNote sends the system instruction and user prompt to the
// Gemini API and returns the generated discharge note text.
func (g *GeminiGenerator) GenerateNote(ctx context.Context, systemMessage, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", generation.ErrGenerationFailed)
	}

	g.logger.InfoContext(ctx, "making Gemini API call",
		"model", g.config.ModelName,
		"prompt_length", len(prompt))

	temperature := g.config.Temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: int32(g.config.MaxTokens),
	}
	if systemMessage != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemMessage}},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.config.ModelName, genai.Text(prompt), genConfig)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed", "error", err)
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrGenerationFailed)
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response stopped by safety filters", generation.ErrContentBlocked)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response text", generation.ErrGenerationFailed)
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"note_length", len(text))

	return text, nil
}
