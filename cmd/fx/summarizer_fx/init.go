package summarizer_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"csat/pkg/utils"
)

var Module = fx.Provide(
	provideSummarizerClient,
)

func provideSummarizerClient() utils.SummarizerClientInterface {
	provider := os.Getenv("SUMMARIZER_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	client, err := utils.NewSummarizerClient(
		provider,
		os.Getenv("SUMMARIZER_API_KEY"),
		os.Getenv("SUMMARIZER_MODEL"),
	)
	if err != nil {
		log.Fatalf("Error creating summarizer client: %v", err)
	}
	return client
}
