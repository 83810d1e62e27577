package repositories

import (
	"time"

	"github.com/google/uuid"

	"csat/internal/models/db_models"
)

// SeedRecords returns the fixed bootstrap sample set: distinct ticket ids,
// timestamps staggered a few days apart ending at now. Used to populate a
// brand-new local store and by the explicit reset-to-seed admin action.
func SeedRecords() []db_models.SurveyRecord {
	now := time.Now().UTC()
	return []db_models.SurveyRecord{
		{
			ID:             uuid.New().String(),
			TicketID:       "TCK-2001",
			CustomerID:     "mia.ferraro@example.com",
			ServiceRating:  5,
			ResponseRating: 4,
			OverallRating:  5,
			Comment:        "Issue was resolved on the first call, great experience.",
			Timestamp:      now.AddDate(0, 0, -12),
		},
		{
			ID:             uuid.New().String(),
			TicketID:       "TCK-2002",
			CustomerID:     "jonas.weber@example.com",
			ServiceRating:  3,
			ResponseRating: 2,
			OverallRating:  3,
			Comment:        "Took two days before anyone answered my ticket.",
			Timestamp:      now.AddDate(0, 0, -9),
		},
		{
			ID:             uuid.New().String(),
			TicketID:       "TCK-2003",
			CustomerID:     "priya.nair@example.com",
			ServiceRating:  4,
			ResponseRating: 5,
			OverallRating:  4,
			Comment:        "",
			Timestamp:      now.AddDate(0, 0, -6),
		},
		{
			ID:             uuid.New().String(),
			TicketID:       "TCK-2004",
			CustomerID:     "Sam Okafor",
			ServiceRating:  2,
			ResponseRating: 3,
			OverallRating:  2,
			Comment:        "The fix did not hold; I had to reopen the ticket.",
			Timestamp:      now.AddDate(0, 0, -3),
		},
		{
			ID:             uuid.New().String(),
			TicketID:       "TCK-2005",
			CustomerID:     "lea.martin@example.com",
			ServiceRating:  5,
			ResponseRating: 5,
			OverallRating:  5,
			Comment:        "Fast, friendly and thorough. Thank you!",
			Timestamp:      now,
		},
	}
}
