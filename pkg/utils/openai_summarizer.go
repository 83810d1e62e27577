package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"csat/internal/models/db_models"
	"csat/internal/models/response_models"
)

type OpenAISummarizer struct {
	client *openai.Client
	model  string
}

func NewOpenAISummarizer(apiKey, model string) *OpenAISummarizer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISummarizer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAISummarizer) Summarize(ctx context.Context, records []db_models.SurveyRecord) (*response_models.AnalysisResult, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to summarize")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildSummaryPrompt(records),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no content generated")
	}

	return decodeAnalysis(resp.Choices[0].Message.Content)
}

func (c *OpenAISummarizer) Close() error { return nil }
