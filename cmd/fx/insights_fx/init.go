package insights_fx

import (
	"go.uber.org/fx"

	"csat/internal/api/controllers"
	"csat/internal/repositories"
	"csat/internal/services"
	"csat/pkg/memcache"
	"csat/pkg/utils"
)

var Module = fx.Provide(
	provideAnalysisCache, provideInsightsService, provideInsightsController,
)

func provideAnalysisCache() memcache.AnalysisCache {
	return memcache.NewAnalysisCache()
}

func provideInsightsService(
	store repositories.SurveyStore,
	summarizer utils.SummarizerClientInterface,
	cache memcache.AnalysisCache,
) services.InsightsServiceInterface {
	return services.NewInsightsService(store, summarizer, cache)
}

func provideInsightsController(insightsService services.InsightsServiceInterface) *controllers.InsightsController {
	return controllers.NewInsightsController(insightsService)
}
