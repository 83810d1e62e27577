package repositories

import (
	"context"

	"csat/internal/models/db_models"
)

// SurveyStore is the backend-agnostic persistence contract for the survey
// collection. Implementations must never report success while the persisted
// state diverges from the returned value, and must never substitute
// fabricated data for a failed read.
type SurveyStore interface {
	// ListAll returns every stored record. The file backend preserves
	// insertion order; the remote backend returns whatever order the
	// endpoint produces.
	ListAll(ctx context.Context) ([]db_models.SurveyRecord, error)

	// Insert appends one record and returns the stored form, which may
	// differ from the input if the backend reassigns fields.
	Insert(ctx context.Context, record *db_models.SurveyRecord) (*db_models.SurveyRecord, error)

	// RemoveByID deletes the matching record. Returns (false, nil) when
	// no record matched; an error only when persistence itself failed.
	RemoveByID(ctx context.Context, id string) (bool, error)

	// ClearAll replaces the collection with an empty one. Backends
	// without a bulk-delete route return ErrUnsupportedOperation.
	ClearAll(ctx context.Context) error

	// ExistsByTicketID reports whether any record carries the given
	// ticket id, exact match after trimming.
	ExistsByTicketID(ctx context.Context, ticketID string) (bool, error)

	// SupportsClear lets callers discover backend capabilities without
	// provoking an ErrUnsupportedOperation.
	SupportsClear() bool
}
