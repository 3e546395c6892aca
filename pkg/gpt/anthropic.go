package gpt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.Model("claude-haiku-4-5"),
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) Analyze(input AnalyzeInput) (*AnalysisResult, error) {
	userPrompt := fmt.Sprintf("Title: %s\nContent: %s", input.Title, input.Description)

	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	content := cleanJSONResponse(resp.Content[0].Text)

	var parsed struct {
		Summary            string   `json:"summary"`
		KeyPoints          []string `json:"key_points"`
		Sentiment          string   `json:"sentiment"`
		Topics             []string `json:"topics"`
		SuggestedQuestions []string `json:"suggested_questions"`
	}

	err = json.Unmarshal([]byte(content), &parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}

	return &AnalysisResult{
		Summary:            parsed.Summary,
		KeyPoints:          parsed.KeyPoints,
		Sentiment:          normalizeSentiment(parsed.Sentiment),
		Topics:             parsed.Topics,
		SuggestedQuestions: parsed.SuggestedQuestions,
		ModelUsed:          c.modelName,
	}, nil
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
