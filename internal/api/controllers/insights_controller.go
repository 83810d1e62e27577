package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"csat/internal/models/request_models"
	"csat/internal/services"
	"csat/pkg/utils"
)

type InsightsController struct {
	insightsService services.InsightsServiceInterface
}

func NewInsightsController(insightsService services.InsightsServiceInterface) *InsightsController {
	return &InsightsController{insightsService: insightsService}
}

// GetInsights godoc
// @Summary Survey insights
// @Description Aggregated metrics over the whole collection: counts, per-dimension averages, rating distribution, recent trend
// @Tags Insights
// @Success 200 {object} utils.APIResponse
// @Router /insights [get]
func (i *InsightsController) GetInsights(c *gin.Context) {
	report, err := i.insightsService.BuildInsights(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Insights built successfully")
}

// Summarize forwards the most recent records to the external summarizer and
// returns the qualitative analysis.
func (i *InsightsController) Summarize(c *gin.Context) {
	var req request_models.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := i.insightsService.SummarizeRecent(c.Request.Context(), req.WindowSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Summary generated successfully")
}
