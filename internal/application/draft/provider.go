package draft

import (
	"context"

	"github.com/bizflow/backend/internal/domain/draft"
)

// ParseResult is what a parser extracted from free-form order text.
// Confidence is in [0,1]; low confidence is data, not an error.
type ParseResult struct {
	Parsed     draft.ParsedOrder
	Confidence float64
}

// Parser turns a free-form order message into structured data.
// Implementations are injected at the composition root; the use case never
// knows whether an LLM or a rule-based fallback did the work.
type Parser interface {
	ParseOrderText(ctx context.Context, text string) (*ParseResult, error)
}
