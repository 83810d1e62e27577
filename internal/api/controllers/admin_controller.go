package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"csat/internal/models/request_models"
	"csat/internal/services"
	"csat/pkg/utils"
)

type AdminController struct {
	adminService  services.AdminServiceInterface
	surveyService services.SurveyServiceInterface
}

func NewAdminController(
	adminService services.AdminServiceInterface,
	surveyService services.SurveyServiceInterface,
) *AdminController {
	return &AdminController{
		adminService:  adminService,
		surveyService: surveyService,
	}
}

func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := a.adminService.Login(req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

// ClearSurveys empties the collection. Distinct from ResetSurveys: a cleared
// store stays empty.
func (a *AdminController) ClearSurveys(c *gin.Context) {
	if err := a.surveyService.ClearSurveys(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "All surveys cleared")
}

// ResetSurveys replaces the collection with the bootstrap sample set.
func (a *AdminController) ResetSurveys(c *gin.Context) {
	if err := a.surveyService.ResetToSeed(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Surveys reset to sample data")
}
