package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"csat/internal/models/db_models"
	"csat/internal/models/response_models"
)

type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

func NewGeminiSummarizer(apiKey, model string) (*GeminiSummarizer, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSummarizer{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiSummarizer) Summarize(ctx context.Context, records []db_models.SurveyRecord) (*response_models.AnalysisResult, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to summarize")
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so brace hunting stays a fallback.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(buildSummaryPrompt(records)))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini: no content generated")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return decodeAnalysis(content)
}

func (c *GeminiSummarizer) Close() error {
	return c.client.Close()
}
