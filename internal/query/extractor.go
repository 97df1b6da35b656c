package query

import (
	"context"

	"github.com/stylora/stylist-intent/internal/models"
	"go.uber.org/zap"
)

// Result is the outcome of extracting one message, regardless of strategy.
type Result struct {
	Filters models.QueryFilters
	Meta    models.QueryMeta
}

// ExternalResult is the richer, optional parse. Either section may be absent;
// a present section is used whole, never blended field-by-field with the
// heuristic result.
type ExternalResult struct {
	Filters *models.QueryFilters `json:"filters"`
	Meta    *models.QueryMeta    `json:"meta"`
}

// LLMParser produces the same filter shape as the heuristic from an external
// model. Implementations return an error for every kind of failure; callers
// treat all of them as "no result".
type LLMParser interface {
	ParseQuery(ctx context.Context, message string) (*ExternalResult, error)
}

// Extractor turns a free-text message into structured filters. The external
// strategy is consulted first when configured; it never fails the caller.
type Extractor struct {
	llm LLMParser
	log *zap.SugaredLogger
}

// NewExtractor creates an extractor. A nil parser means heuristics only.
func NewExtractor(llm LLMParser, log *zap.SugaredLogger) *Extractor {
	return &Extractor{
		llm: llm,
		log: log,
	}
}

// Extract runs the extraction chain for one message.
func (e *Extractor) Extract(ctx context.Context, message string) Result {
	heuristic := Heuristic(message)

	if e.llm == nil {
		return heuristic
	}

	external, err := e.llm.ParseQuery(ctx, message)
	if err != nil {
		e.log.Warnw("LLM parse failed, falling back to heuristics", "error", err)
		return heuristic
	}
	if external == nil {
		return heuristic
	}

	result := heuristic
	if external.Filters != nil {
		result.Filters = *external.Filters
	}
	if external.Meta != nil {
		result.Meta = *external.Meta
	}
	return result
}
