package ai

import (
	"strings"

	"go.uber.org/zap"

	appdraft "github.com/bizflow/backend/internal/application/draft"
)

// NewParser picks the parser implementation for the configured provider.
// "openai" with an API key gets the real model; anything else, including a
// missing key, falls back to the regex parser so the intake flow keeps
// working in demos and tests.
func NewParser(provider, apiKey, model string, logger *zap.Logger) appdraft.Parser {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "openai":
		if apiKey == "" {
			logger.Warn("AI provider set to openai but no API key configured, using mock parser")
			return NewMockParser()
		}
		logger.Info("Using OpenAI order parser", zap.String("model", model))
		return NewOpenAIParser(apiKey, model)
	default:
		logger.Info("Using mock order parser")
		return NewMockParser()
	}
}
