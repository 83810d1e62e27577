package services

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"csat/internal/models/db_models"
	"csat/internal/models/response_models"
	"csat/internal/repositories"
	"csat/pkg/memcache"
	"csat/pkg/utils"
)

const (
	// DefaultSummaryWindow bounds how many of the most recent records are
	// forwarded to the external summarizer.
	DefaultSummaryWindow = 20
	maxSummaryWindow     = 100

	trendWindow      = 10
	recentEntryCount = 5

	analysisCacheTTL = 15 * time.Minute
)

type InsightsServiceInterface interface {
	BuildInsights(ctx context.Context) (*response_models.InsightsReport, error)
	SummarizeRecent(ctx context.Context, windowSize int) (*response_models.AnalysisResult, error)
}

type InsightsService struct {
	store      repositories.SurveyStore
	summarizer utils.SummarizerClientInterface
	cache      memcache.AnalysisCache
}

func NewInsightsService(
	store repositories.SurveyStore,
	summarizer utils.SummarizerClientInterface,
	cache memcache.AnalysisCache,
) InsightsServiceInterface {
	return &InsightsService{
		store:      store,
		summarizer: summarizer,
		cache:      cache,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sortedByTime returns a copy ordered oldest first. The remote backend makes
// no ordering promise, so recency is always derived from timestamps.
func sortedByTime(records []db_models.SurveyRecord) []db_models.SurveyRecord {
	out := make([]db_models.SurveyRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func (s *InsightsService) BuildInsights(ctx context.Context) (*response_models.InsightsReport, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &response_models.InsightsReport{
		TotalRecords:  int64(len(records)),
		Trend:         []response_models.TrendPoint{},
		RecentEntries: []db_models.SurveyRecord{},
	}
	if len(records) == 0 {
		return report, nil
	}

	var serviceSum, responseSum, overallSum int64
	for _, r := range records {
		serviceSum += int64(r.ServiceRating)
		responseSum += int64(r.ResponseRating)
		overallSum += int64(r.OverallRating)
		report.Distribution.Add(r.OverallRating)
	}
	n := float64(len(records))
	report.Averages = response_models.RatingAverages{
		Service:  round2(float64(serviceSum) / n),
		Response: round2(float64(responseSum) / n),
		Overall:  round2(float64(overallSum) / n),
	}

	ordered := sortedByTime(records)

	trendStart := len(ordered) - trendWindow
	if trendStart < 0 {
		trendStart = 0
	}
	for _, r := range ordered[trendStart:] {
		report.Trend = append(report.Trend, response_models.TrendPoint{
			Timestamp:     r.Timestamp,
			OverallRating: r.OverallRating,
		})
	}

	for i := len(ordered) - 1; i >= 0 && len(report.RecentEntries) < recentEntryCount; i-- {
		report.RecentEntries = append(report.RecentEntries, ordered[i])
	}

	return report, nil
}

// SummarizeRecent forwards the most recent windowSize records to the
// external summarizer. A failed or malformed external response degrades to
// the neutral default; store errors still propagate.
func (s *InsightsService) SummarizeRecent(ctx context.Context, windowSize int) (*response_models.AnalysisResult, error) {
	if windowSize <= 0 {
		windowSize = DefaultSummaryWindow
	}
	if windowSize > maxSummaryWindow {
		windowSize = maxSummaryWindow
	}

	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return response_models.NeutralAnalysis(), nil
	}

	ordered := sortedByTime(records)
	if len(ordered) > windowSize {
		ordered = ordered[len(ordered)-windowSize:]
	}

	key := memcache.WindowKey(ordered)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	result, err := s.summarizer.Summarize(ctx, ordered)
	if err != nil {
		log.Printf("Summarizer call failed, using neutral analysis: %v", err)
		return response_models.NeutralAnalysis(), nil
	}

	s.cache.Set(key, result, analysisCacheTTL)
	return result, nil
}
