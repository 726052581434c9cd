package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// ErrLLMNotConfigured is returned by Generate when no API key was provided.
// Callers treat it like any other generation failure: degrade to empty.
var ErrLLMNotConfigured = errors.New("llm not configured")

// LLMService is a thin wrapper over the Gemini client. Holding the client
// here means we don't recreate it on every call.
type LLMService struct {
	client llms.Model
}

// NewLLMService initializes the Gemini client. An empty API key is not an
// error; it yields a service whose Generate always fails with
// ErrLLMNotConfigured, which the extraction and contact clients absorb.
func NewLLMService(ctx context.Context, apiKey string, logger *slog.Logger) *LLMService {
	if logger == nil {
		logger = slog.Default()
	}
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, LLM analysis disabled")
		return &LLMService{}
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		logger.Warn("failed to create Gemini client, LLM analysis disabled", "error", err)
		return &LLMService{}
	}
	return &LLMService{client: llm}
}

// Generate sends one prompt and returns the raw completion text.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrLLMNotConfigured
	}
	return llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
}
