package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stylora/stylist-intent/internal/models"
	"go.uber.org/zap"
)

type stubParser struct {
	result *ExternalResult
	err    error
}

func (s *stubParser) ParseQuery(ctx context.Context, message string) (*ExternalResult, error) {
	return s.result, s.err
}

func TestExtractWithoutParserUsesHeuristic(t *testing.T) {
	e := NewExtractor(nil, zap.NewNop().Sugar())

	result := e.Extract(context.Background(), "beige sneakers under ₹2000")

	assert.Equal(t, "beige", result.Filters.Color)
	assert.Equal(t, "sneakers", result.Filters.Category)
}

func TestExtractParserFailureFallsBackWhole(t *testing.T) {
	e := NewExtractor(&stubParser{err: errors.New("timeout")}, zap.NewNop().Sugar())

	result := e.Extract(context.Background(), "beige sneakers under ₹2000")

	assert.Equal(t, "beige", result.Filters.Color)
	assert.Equal(t, "sneakers", result.Filters.Category)
}

func TestExtractParserFiltersUsedWhole(t *testing.T) {
	// The external filters replace the heuristic filters entirely, even when
	// the heuristic found fields the external result lacks.
	e := NewExtractor(&stubParser{result: &ExternalResult{
		Filters: &models.QueryFilters{Category: "shoes"},
	}}, zap.NewNop().Sugar())

	result := e.Extract(context.Background(), "beige sneakers under ₹2000")

	assert.Equal(t, "shoes", result.Filters.Category)
	assert.Empty(t, result.Filters.Color, "heuristic color must not leak into the external filters")
	assert.Nil(t, result.Filters.Budget)
	// Meta was absent from the external result, so the heuristic meta is used.
	assert.Zero(t, result.Meta.Quantity)
}

func TestExtractParserMetaUsedWhole(t *testing.T) {
	e := NewExtractor(&stubParser{result: &ExternalResult{
		Meta: &models.QueryMeta{Quantity: 2},
	}}, zap.NewNop().Sugar())

	result := e.Extract(context.Background(), "show me 5 options of beige sneakers")

	// Filters were absent from the external result: heuristic filters win.
	assert.Equal(t, "beige", result.Filters.Color)
	assert.Equal(t, 2, result.Meta.Quantity)
}

func TestParseLLMResponseExtractsEmbeddedJSON(t *testing.T) {
	content := "Sure! Here is the JSON you asked for:\n{\"filters\": {\"color\": \"red\"}, \"meta\": {\"quantity\": 2}}\nAnything else?"

	result, err := parseLLMResponse(content)

	assert.NoError(t, err)
	assert.Equal(t, "red", result.Filters.Color)
	assert.Equal(t, 2, result.Meta.Quantity)
}

func TestParseLLMResponseRejectsNonJSON(t *testing.T) {
	_, err := parseLLMResponse("I cannot help with that.")
	assert.Error(t, err)

	_, err = parseLLMResponse("{broken")
	assert.Error(t, err)
}

func TestParseLLMResponseNullSections(t *testing.T) {
	result, err := parseLLMResponse(`{"filters": null, "meta": null}`)

	assert.NoError(t, err)
	assert.Nil(t, result.Filters)
	assert.Nil(t, result.Meta)
}
