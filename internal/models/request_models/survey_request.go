package request_models

type SubmitSurveyRequest struct {
	TicketID       string `json:"ticket_id" binding:"required"`
	CustomerID     string `json:"customer_id" binding:"required"`
	ServiceRating  int    `json:"service_rating"`
	ResponseRating int    `json:"response_rating"`
	OverallRating  int    `json:"overall_rating"`
	Comment        string `json:"comment"`
}
