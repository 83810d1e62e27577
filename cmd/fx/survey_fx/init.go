package survey_fx

import (
	"go.uber.org/fx"

	"csat/internal/api/controllers"
	"csat/internal/repositories"
	"csat/internal/services"
)

var Module = fx.Provide(
	provideSurveyService, provideExportService, provideSurveyController,
)

func provideSurveyService(store repositories.SurveyStore) services.SurveyServiceInterface {
	return services.NewSurveyService(store)
}

func provideExportService(store repositories.SurveyStore) services.ExportServiceInterface {
	return services.NewExportService(store)
}

func provideSurveyController(
	surveyService services.SurveyServiceInterface,
	exportService services.ExportServiceInterface,
) *controllers.SurveyController {
	return controllers.NewSurveyController(surveyService, exportService)
}
