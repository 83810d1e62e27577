package response_models

import (
	"time"

	"csat/internal/models/db_models"
)

type RatingAverages struct {
	Service  float64 `json:"service"`
	Response float64 `json:"response"`
	Overall  float64 `json:"overall"`
}

// Distribution counts records per overall-rating value.
type Distribution struct {
	One   int64 `json:"1"`
	Two   int64 `json:"2"`
	Three int64 `json:"3"`
	Four  int64 `json:"4"`
	Five  int64 `json:"5"`
}

func (d *Distribution) Add(rating int) {
	switch rating {
	case 1:
		d.One++
	case 2:
		d.Two++
	case 3:
		d.Three++
	case 4:
		d.Four++
	case 5:
		d.Five++
	}
}

type TrendPoint struct {
	Timestamp     time.Time `json:"timestamp"`
	OverallRating int       `json:"overall_rating"`
}

type InsightsReport struct {
	TotalRecords  int64                    `json:"total_records"`
	Averages      RatingAverages           `json:"averages"`
	Distribution  Distribution             `json:"distribution"`
	Trend         []TrendPoint             `json:"trend"`
	RecentEntries []db_models.SurveyRecord `json:"recent_entries"`
}
