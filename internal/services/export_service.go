package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"csat/internal/models/db_models"
	"csat/internal/repositories"
)

// ExportFilter narrows the exported set the way the admin list view does.
// Zero values mean "no filtering" for that field.
type ExportFilter struct {
	TicketID         string
	CustomerContains string
	MinOverallRating int
}

type ExportServiceInterface interface {
	ExportCSV(ctx context.Context, filter ExportFilter) (string, error)
}

type ExportService struct {
	store repositories.SurveyStore
}

func NewExportService(store repositories.SurveyStore) ExportServiceInterface {
	return &ExportService{store: store}
}

func (f ExportFilter) matches(r db_models.SurveyRecord) bool {
	if f.TicketID != "" && strings.TrimSpace(r.TicketID) != strings.TrimSpace(f.TicketID) {
		return false
	}
	if f.CustomerContains != "" &&
		!strings.Contains(strings.ToLower(r.CustomerID), strings.ToLower(f.CustomerContains)) {
		return false
	}
	if f.MinOverallRating > 0 && r.OverallRating < f.MinOverallRating {
		return false
	}
	return true
}

// csvText quotes a free-text field: embedded quotes doubled, line breaks
// replaced by spaces. encoding/csv only quotes when it must, while this
// export format always quotes free text, so the quoting is done by hand.
func csvText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, `"`, `""`)
	return `"` + s + `"`
}

// ExportCSV renders the filtered record set as semicolon-delimited CSV, one
// row per record. Stateless: nothing is persisted.
func (s *ExportService) ExportCSV(ctx context.Context, filter ExportFilter) (string, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.WriteString("id;ticket_id;customer_id;service_rating;response_rating;overall_rating;comment;timestamp\n")

	for _, r := range records {
		if !filter.matches(r) {
			continue
		}
		row := []string{
			r.ID,
			r.TicketID,
			csvText(r.CustomerID),
			strconv.Itoa(r.ServiceRating),
			strconv.Itoa(r.ResponseRating),
			strconv.Itoa(r.OverallRating),
			csvText(r.Comment),
			r.Timestamp.UTC().Format(time.RFC3339),
		}
		buf.WriteString(strings.Join(row, ";"))
		buf.WriteByte('\n')
	}

	return buf.String(), nil
}
