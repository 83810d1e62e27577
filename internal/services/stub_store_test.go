package services

import (
	"context"
	"strings"

	"csat/internal/models/db_models"
	"csat/pkg/utils"
)

// stubStore is an in-memory SurveyStore for service tests.
type stubStore struct {
	records       []db_models.SurveyRecord
	supportsClear bool

	listErr   error
	insertErr error
}

func newStubStore(records ...db_models.SurveyRecord) *stubStore {
	return &stubStore{records: records, supportsClear: true}
}

func (s *stubStore) SupportsClear() bool { return s.supportsClear }

func (s *stubStore) ListAll(_ context.Context) ([]db_models.SurveyRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]db_models.SurveyRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *stubStore) Insert(_ context.Context, record *db_models.SurveyRecord) (*db_models.SurveyRecord, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	s.records = append(s.records, *record)
	stored := *record
	return &stored, nil
}

func (s *stubStore) RemoveByID(_ context.Context, id string) (bool, error) {
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStore) ClearAll(_ context.Context) error {
	if !s.supportsClear {
		return utils.ErrUnsupportedOperation
	}
	s.records = nil
	return nil
}

func (s *stubStore) ExistsByTicketID(_ context.Context, ticketID string) (bool, error) {
	if s.listErr != nil {
		return false, s.listErr
	}
	needle := strings.TrimSpace(ticketID)
	for _, r := range s.records {
		if strings.TrimSpace(r.TicketID) == needle {
			return true, nil
		}
	}
	return false, nil
}
