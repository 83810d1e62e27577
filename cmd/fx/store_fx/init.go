package store_fx

import (
	"log"
	"net/http"
	"os"
	"strings"

	"go.uber.org/fx"

	"csat/internal/infra"
	"csat/internal/repositories"
)

var Module = fx.Provide(
	provideSurveyStore,
)

// provideSurveyStore selects the backend once, at construction time. The
// rest of the application only ever sees the SurveyStore contract.
func provideSurveyStore() repositories.SurveyStore {
	switch strings.ToLower(os.Getenv("STORE_BACKEND")) {
	case "remote":
		baseURL := os.Getenv("REMOTE_STORE_URL")
		if baseURL == "" {
			log.Fatal("STORE_BACKEND=remote requires REMOTE_STORE_URL")
		}
		return repositories.NewHTTPStore(baseURL, http.DefaultClient)
	case "postgres":
		return repositories.NewGormStore(infra.InitPostgresql())
	default:
		path := os.Getenv("SURVEY_STORE_FILE")
		if path == "" {
			path = "surveys.json"
		}
		return repositories.NewFileStore(path)
	}
}
