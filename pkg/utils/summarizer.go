package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"csat/internal/models/db_models"
	"csat/internal/models/response_models"
)

// SummarizerClientInterface is the boundary to the external text-generation
// service. Implementations must return the AnalysisResult shape or an error;
// substituting a neutral default on failure is the caller's job.
type SummarizerClientInterface interface {
	Summarize(ctx context.Context, records []db_models.SurveyRecord) (*response_models.AnalysisResult, error)
	Close() error
}

// NewSummarizerClient picks the provider from config.
func NewSummarizerClient(provider, apiKey, model string) (SummarizerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAISummarizer(apiKey, model), nil
	case "gemini":
		return NewGeminiSummarizer(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported summarizer provider: %s", provider)
	}
}

func buildSummaryPrompt(records []db_models.SurveyRecord) string {
	var buf strings.Builder
	for _, r := range records {
		fmt.Fprintf(&buf, "- ticket:%s | service:%d | response:%d | overall:%d | comment:%s\n",
			r.TicketID, r.ServiceRating, r.ResponseRating, r.OverallRating, strings.TrimSpace(r.Comment))
	}

	return fmt.Sprintf(`You are analyzing customer-satisfaction survey results for a support team.
Ratings are 1 (worst) to 5 (best). Return **JSON only** matching this schema exactly:

{"sentiment":"Positive|Neutral|Negative","summary":"string","strengths":["string"],"improvements":["string"]}

Survey entries (most recent last):
%s
Rules:
- "sentiment" must be exactly one of Positive, Neutral, Negative.
- "summary" is 2-3 sentences on the overall satisfaction picture.
- "strengths" and "improvements" each hold 2-4 short findings.

Return JSON only. No comments, no markdown.`, buf.String())
}

// decodeAnalysis parses the model output and checks the contract shape.
func decodeAnalysis(content string) (*response_models.AnalysisResult, error) {
	content = cleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("summarizer returned invalid JSON")
	}

	var result response_models.AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("summarizer response does not match the analysis shape: %w", err)
	}
	if !response_models.ValidSentiment(result.Sentiment) {
		return nil, fmt.Errorf("summarizer returned unknown sentiment %q", result.Sentiment)
	}
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Improvements == nil {
		result.Improvements = []string{}
	}
	return &result, nil
}

// cleanJSONResponse strips markdown fences and leading prose some models
// wrap around the JSON object.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "{")
	if start == -1 {
		return response
	}
	end := findMatchingBrace(response, start)
	if end == -1 {
		return response
	}
	return strings.TrimSpace(response[start : end+1])
}

func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
