package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"csat/internal/models/db_models"
	"csat/internal/models/response_models"
	"csat/pkg/memcache"
	"csat/pkg/utils"
)

type stubSummarizer struct {
	result *response_models.AnalysisResult
	err    error
	calls  int
}

func (s *stubSummarizer) Summarize(_ context.Context, _ []db_models.SurveyRecord) (*response_models.AnalysisResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubSummarizer) Close() error { return nil }

func scenarioRecords() []db_models.SurveyRecord {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	mk := func(i int, ticketID string, service, response, overall int) db_models.SurveyRecord {
		return db_models.SurveyRecord{
			ID:             fmt.Sprintf("id-%d", i),
			TicketID:       ticketID,
			CustomerID:     "customer-" + ticketID,
			ServiceRating:  service,
			ResponseRating: response,
			OverallRating:  overall,
			Timestamp:      base.Add(time.Duration(i) * time.Hour),
		}
	}
	return []db_models.SurveyRecord{
		mk(0, "1001", 4, 5, 5),
		mk(1, "1024", 2, 3, 4),
		mk(2, "1035", 5, 5, 5),
	}
}

func newInsights(store *stubStore, summarizer utils.SummarizerClientInterface) InsightsServiceInterface {
	return NewInsightsService(store, summarizer, memcache.NewAnalysisCache())
}

func TestBuildInsightsAverages(t *testing.T) {
	store := newStubStore(scenarioRecords()...)
	svc := newInsights(store, &stubSummarizer{})

	report, err := svc.BuildInsights(context.Background())
	if err != nil {
		t.Fatalf("BuildInsights: %v", err)
	}

	if report.TotalRecords != 3 {
		t.Fatalf("TotalRecords = %d, want 3", report.TotalRecords)
	}
	// (4+2+5)/3 = 3.67 after rounding to two decimals.
	if report.Averages.Service != 3.67 {
		t.Errorf("service average = %v, want 3.67", report.Averages.Service)
	}
	if report.Averages.Response != 4.33 {
		t.Errorf("response average = %v, want 4.33", report.Averages.Response)
	}
	if report.Averages.Overall != 4.67 {
		t.Errorf("overall average = %v, want 4.67", report.Averages.Overall)
	}
	if report.Distribution.Five != 2 || report.Distribution.Four != 1 {
		t.Errorf("distribution = %+v, want two 5s and one 4", report.Distribution)
	}
}

func TestBuildInsightsTrendAndRecent(t *testing.T) {
	store := newStubStore(scenarioRecords()...)
	svc := newInsights(store, &stubSummarizer{})

	report, err := svc.BuildInsights(context.Background())
	if err != nil {
		t.Fatalf("BuildInsights: %v", err)
	}

	if len(report.Trend) != 3 {
		t.Fatalf("trend has %d points, want 3", len(report.Trend))
	}
	for i := 1; i < len(report.Trend); i++ {
		if report.Trend[i].Timestamp.Before(report.Trend[i-1].Timestamp) {
			t.Fatal("trend points are not chronological")
		}
	}

	if len(report.RecentEntries) != 3 {
		t.Fatalf("recent entries has %d records, want 3", len(report.RecentEntries))
	}
	if report.RecentEntries[0].TicketID != "1035" {
		t.Errorf("newest entry is %q, want 1035", report.RecentEntries[0].TicketID)
	}
}

func TestBuildInsightsEmptyCollection(t *testing.T) {
	svc := newInsights(newStubStore(), &stubSummarizer{})

	report, err := svc.BuildInsights(context.Background())
	if err != nil {
		t.Fatalf("BuildInsights: %v", err)
	}
	if report.TotalRecords != 0 {
		t.Fatalf("TotalRecords = %d, want 0", report.TotalRecords)
	}
}

func TestBuildInsightsSurfacesStoreError(t *testing.T) {
	store := newStubStore()
	store.listErr = utils.ErrConnection
	svc := newInsights(store, &stubSummarizer{})

	_, err := svc.BuildInsights(context.Background())
	if !errors.Is(err, utils.ErrConnection) {
		t.Fatalf("got %v, want ErrConnection", err)
	}
}

func TestSummarizeRecentPassesThroughAnalysis(t *testing.T) {
	want := &response_models.AnalysisResult{
		Sentiment:    response_models.SentimentPositive,
		Summary:      "Customers are broadly happy.",
		Strengths:    []string{"fast first response"},
		Improvements: []string{"follow-up consistency"},
	}
	summarizer := &stubSummarizer{result: want}
	svc := newInsights(newStubStore(scenarioRecords()...), summarizer)

	got, err := svc.SummarizeRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("SummarizeRecent: %v", err)
	}
	if got.Sentiment != want.Sentiment || got.Summary != want.Summary {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSummarizeRecentCachesPerWindow(t *testing.T) {
	summarizer := &stubSummarizer{result: response_models.NeutralAnalysis()}
	svc := newInsights(newStubStore(scenarioRecords()...), summarizer)
	ctx := context.Background()

	if _, err := svc.SummarizeRecent(ctx, 0); err != nil {
		t.Fatalf("first SummarizeRecent: %v", err)
	}
	if _, err := svc.SummarizeRecent(ctx, 0); err != nil {
		t.Fatalf("second SummarizeRecent: %v", err)
	}
	if summarizer.calls != 1 {
		t.Fatalf("summarizer called %d times for an unchanged window, want 1", summarizer.calls)
	}
}

func TestSummarizeRecentNeutralDefaultOnFailure(t *testing.T) {
	summarizer := &stubSummarizer{err: errors.New("model unavailable")}
	svc := newInsights(newStubStore(scenarioRecords()...), summarizer)

	got, err := svc.SummarizeRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("SummarizeRecent: %v", err)
	}
	if got.Sentiment != response_models.SentimentNeutral {
		t.Fatalf("sentiment = %q, want the neutral default", got.Sentiment)
	}
}

func TestSummarizeRecentEmptyCollection(t *testing.T) {
	summarizer := &stubSummarizer{}
	svc := newInsights(newStubStore(), summarizer)

	got, err := svc.SummarizeRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("SummarizeRecent: %v", err)
	}
	if got.Sentiment != response_models.SentimentNeutral {
		t.Fatalf("sentiment = %q, want the neutral default", got.Sentiment)
	}
	if summarizer.calls != 0 {
		t.Fatal("summarizer was called for an empty collection")
	}
}
