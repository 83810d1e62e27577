package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"csat/internal/models/request_models"
	"csat/internal/services"
	"csat/pkg/utils"
)

type SurveyController struct {
	surveyService services.SurveyServiceInterface
	exportService services.ExportServiceInterface
}

func NewSurveyController(
	surveyService services.SurveyServiceInterface,
	exportService services.ExportServiceInterface,
) *SurveyController {
	return &SurveyController{
		surveyService: surveyService,
		exportService: exportService,
	}
}

// SubmitSurvey godoc
// @Summary Submit a survey
// @Description Submit a satisfaction survey for a support ticket. One survey per ticket.
// @Tags Surveys
// @Accept json
// @Produce json
// @Param request body request_models.SubmitSurveyRequest true "Survey payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /surveys [post]
func (s *SurveyController) SubmitSurvey(c *gin.Context) {
	var req request_models.SubmitSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	record, err := s.surveyService.SubmitSurvey(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, record, "Survey submitted successfully")
}

// ListSurveys godoc
// @Summary List surveys
// @Description Get every stored survey record
// @Tags Surveys
// @Success 200 {object} utils.APIResponse
// @Router /surveys [get]
func (s *SurveyController) ListSurveys(c *gin.Context) {
	records, err := s.surveyService.ListSurveys(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Surveys fetched successfully")
}

func (s *SurveyController) DeleteSurvey(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing survey id")
		return
	}

	if err := s.surveyService.DeleteSurvey(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Survey deleted successfully")
}

// CheckTicket reports whether a ticket already has a survey, so the intake
// form can warn before submission.
func (s *SurveyController) CheckTicket(c *gin.Context) {
	ticketID := c.Param("ticketId")

	exists, err := s.surveyService.TicketExists(c.Request.Context(), ticketID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"ticket_id": ticketID, "exists": exists}, "Ticket checked")
}

// ExportSurveys streams the filtered record set as semicolon-delimited CSV.
func (s *SurveyController) ExportSurveys(c *gin.Context) {
	filter := services.ExportFilter{
		TicketID:         c.Query("ticket_id"),
		CustomerContains: c.Query("customer"),
	}
	if raw := c.Query("min_overall"); raw != "" {
		minOverall, err := strconv.Atoi(raw)
		if err != nil || minOverall < 1 || minOverall > 5 {
			utils.RespondError(c, http.StatusBadRequest, "min_overall must be between 1 and 5")
			return
		}
		filter.MinOverallRating = minOverall
	}

	csv, err := s.exportService.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="surveys.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
