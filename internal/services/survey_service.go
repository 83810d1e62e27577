package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"csat/internal/models/db_models"
	"csat/internal/models/request_models"
	"csat/internal/repositories"
	"csat/pkg/utils"
)

type SurveyServiceInterface interface {
	SubmitSurvey(ctx context.Context, req request_models.SubmitSurveyRequest) (*db_models.SurveyRecord, error)
	ListSurveys(ctx context.Context) ([]db_models.SurveyRecord, error)
	DeleteSurvey(ctx context.Context, id string) error
	ClearSurveys(ctx context.Context) error
	ResetToSeed(ctx context.Context) error
	TicketExists(ctx context.Context, ticketID string) (bool, error)
}

type SurveyService struct {
	store repositories.SurveyStore
}

func NewSurveyService(store repositories.SurveyStore) SurveyServiceInterface {
	return &SurveyService{store: store}
}

func validateRating(name string, value int) error {
	// 0 is the "unset" sentinel coming from an untouched form control.
	if value == 0 {
		return fmt.Errorf("%w: %s rating is required", utils.ErrValidation, name)
	}
	if value < 1 || value > 5 {
		return fmt.Errorf("%w: %s rating must be between 1 and 5", utils.ErrValidation, name)
	}
	return nil
}

// SubmitSurvey validates the submission, runs the duplicate guard and
// inserts the record. The check-then-insert sequence is not atomic; the
// database backend additionally enforces ticket uniqueness at write time.
func (s *SurveyService) SubmitSurvey(ctx context.Context, req request_models.SubmitSurveyRequest) (*db_models.SurveyRecord, error) {
	ticketID := strings.TrimSpace(req.TicketID)
	customerID := strings.TrimSpace(req.CustomerID)

	if ticketID == "" {
		return nil, fmt.Errorf("%w: ticket id is required", utils.ErrValidation)
	}
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", utils.ErrValidation)
	}
	if err := validateRating("service", req.ServiceRating); err != nil {
		return nil, err
	}
	if err := validateRating("response", req.ResponseRating); err != nil {
		return nil, err
	}
	if err := validateRating("overall", req.OverallRating); err != nil {
		return nil, err
	}

	exists, err := s.store.ExistsByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.ErrDuplicateTicket
	}

	record := &db_models.SurveyRecord{
		ID:             uuid.New().String(),
		TicketID:       ticketID,
		CustomerID:     customerID,
		ServiceRating:  req.ServiceRating,
		ResponseRating: req.ResponseRating,
		OverallRating:  req.OverallRating,
		Comment:        strings.TrimSpace(req.Comment),
		Timestamp:      time.Now().UTC(),
	}

	return s.store.Insert(ctx, record)
}

func (s *SurveyService) ListSurveys(ctx context.Context) ([]db_models.SurveyRecord, error) {
	return s.store.ListAll(ctx)
}

func (s *SurveyService) DeleteSurvey(ctx context.Context, id string) error {
	removed, err := s.store.RemoveByID(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return utils.ErrRecordNotFound
	}
	return nil
}

func (s *SurveyService) ClearSurveys(ctx context.Context) error {
	return s.store.ClearAll(ctx)
}

// ResetToSeed is distinct from ClearSurveys: it clears the collection and
// re-inserts the bootstrap sample set.
func (s *SurveyService) ResetToSeed(ctx context.Context) error {
	if !s.store.SupportsClear() {
		return utils.ErrUnsupportedOperation
	}
	if err := s.store.ClearAll(ctx); err != nil {
		return err
	}
	for _, record := range repositories.SeedRecords() {
		if _, err := s.store.Insert(ctx, &record); err != nil {
			return err
		}
	}
	return nil
}

func (s *SurveyService) TicketExists(ctx context.Context, ticketID string) (bool, error) {
	return s.store.ExistsByTicketID(ctx, ticketID)
}
