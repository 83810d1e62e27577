package admin_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"csat/internal/api/controllers"
	"csat/internal/services"
)

var Module = fx.Provide(
	provideAdminService, provideAdminController,
)

func provideAdminService() services.AdminServiceInterface {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}
	return services.NewAdminService(password)
}

func provideAdminController(
	adminService services.AdminServiceInterface,
	surveyService services.SurveyServiceInterface,
) *controllers.AdminController {
	return controllers.NewAdminController(adminService, surveyService)
}
