package gpt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const systemPrompt = `You are an expert news analyst. Analyze the article you are given and provide:
1. A concise summary
2. Key points
3. Sentiment analysis
4. Main topics
5. Suggested follow-up questions

Output as JSON only, no other text:
{
  "summary": "concise summary",
  "key_points": ["point", ...],
  "sentiment": "positive" | "negative" | "neutral",
  "topics": ["topic", ...],
  "suggested_questions": ["question", ...]
}`

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) Analyze(input AnalyzeInput) (*AnalysisResult, error) {
	userPrompt := fmt.Sprintf("Title: %s\nContent: %s", input.Title, input.Description)

	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	content := cleanJSONResponse(resp.Choices[0].Message.Content)

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

// normalizeSentiment collapses free-form model output onto the three
// values the store accepts.
func normalizeSentiment(s string) string {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "positive"):
		return "positive"
	case strings.Contains(s, "negative"):
		return "negative"
	default:
		return "neutral"
	}
}
