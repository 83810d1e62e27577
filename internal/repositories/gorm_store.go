package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"csat/internal/models/db_models"
	"csat/pkg/utils"
)

// GormStore backs the collection with Postgres. Unlike the file and remote
// backends, ticket uniqueness is enforced here as a true write-time
// constraint (unique index on ticket_id), so two concurrent writers cannot
// both slip past the read-side duplicate check.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) SupportsClear() bool { return true }

func (s *GormStore) ListAll(ctx context.Context) ([]db_models.SurveyRecord, error) {
	var records []db_models.SurveyRecord
	err := s.db.WithContext(ctx).
		Order("timestamp ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrConnection, err)
	}
	return records, nil
}

func (s *GormStore) Insert(ctx context.Context, record *db_models.SurveyRecord) (*db_models.SurveyRecord, error) {
	err := s.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateTicket
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}
	return record, nil
}

func (s *GormStore) RemoveByID(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&db_models.SurveyRecord{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrWrite, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) ClearAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&db_models.SurveyRecord{}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrWrite, err)
	}
	return nil
}

func (s *GormStore) ExistsByTicketID(ctx context.Context, ticketID string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&db_models.SurveyRecord{}).
		Where("ticket_id = ?", strings.TrimSpace(ticketID)).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("%w: %v", utils.ErrConnection, err)
	}
	return n > 0, nil
}
