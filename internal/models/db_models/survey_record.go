package db_models

import "time"

// SurveyRecord is one submitted evaluation of a support ticket. Records are
// immutable once stored; there is no update path.
type SurveyRecord struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	TicketID   string `gorm:"type:text;not null;uniqueIndex:idx_survey_ticket" json:"ticket_id"`
	CustomerID string `gorm:"type:text;not null" json:"customer_id"`

	// Rating dimensions, each in [1,5]. Intake rejects anything outside
	// that range before a record reaches a store; the stores themselves
	// perform raw inserts.
	ServiceRating  int `gorm:"type:int;check:service_rating >= 1 AND service_rating <= 5" json:"service_rating"`
	ResponseRating int `gorm:"type:int;check:response_rating >= 1 AND response_rating <= 5" json:"response_rating"`
	OverallRating  int `gorm:"type:int;check:overall_rating >= 1 AND overall_rating <= 5" json:"overall_rating"`

	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

func (SurveyRecord) TableName() string {
	return "survey_records"
}
