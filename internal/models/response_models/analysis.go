package response_models

const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// AnalysisResult is the structured output of the external summarizer. The
// core treats it as opaque apart from checking the shape; a malformed
// response is replaced by NeutralAnalysis().
type AnalysisResult struct {
	Sentiment    string   `json:"sentiment"`
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

func ValidSentiment(s string) bool {
	return s == SentimentPositive || s == SentimentNeutral || s == SentimentNegative
}

func NeutralAnalysis() *AnalysisResult {
	return &AnalysisResult{
		Sentiment:    SentimentNeutral,
		Summary:      "No analysis is available for the selected records.",
		Strengths:    []string{},
		Improvements: []string{},
	}
}
