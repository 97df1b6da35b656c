package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const systemPrompt = `You are an AI stylist assistant.
Return a compact JSON object with product filters extracted from the user query.
Format: {"filters": {"category": string|null, "color": string|null, "material": string|null, "gender": string|null, "brand": string|null, "budget": {"min": number|null, "max": number|null}|null, "size": string[]|null}, "meta": {"quantity": number|null}}
Use lowercase values.
Only respond with valid JSON.`

// OpenAIParser is the external extraction strategy, backed by an OpenAI chat
// model through langchaingo. Temperature is pinned to zero so identical
// messages parse identically.
type OpenAIParser struct {
	model   *openai.LLM
	timeout time.Duration
}

func NewOpenAIParser(apiKey, model string, timeout time.Duration) (*OpenAIParser, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIParser{
		model:   llm,
		timeout: timeout,
	}, nil
}

func (p *OpenAIParser) ParseQuery(ctx context.Context, message string) (*ExternalResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	response, err := p.model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, message),
		},
		llms.WithTemperature(0),
	)
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("empty completion")
	}

	return parseLLMResponse(response.Choices[0].Content)
}

func parseLLMResponse(content string) (*ExternalResult, error) {
	jsonContent := extractJSON(content)
	if jsonContent == "" {
		return nil, fmt.Errorf("no valid JSON found in response")
	}

	var result ExternalResult
	if err := json.Unmarshal([]byte(jsonContent), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &result, nil
}

func extractJSON(content string) string {
	start := strings.Index(content, "{")
	if start == -1 {
		return ""
	}

	end := strings.LastIndex(content, "}")
	if end == -1 || end <= start {
		return ""
	}

	return content[start : end+1]
}
