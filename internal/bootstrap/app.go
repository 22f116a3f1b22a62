// Package bootstrap builds the application graph from configuration.
package bootstrap

import (
	"context"
	"errors"
	"os"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/extract"
	"resume-parser/internal/fields"
	"resume-parser/internal/llm"
	openai "resume-parser/internal/llm/openai"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/server"
	"resume-parser/internal/validation"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Gate           *validation.Gate
	Readers        *extract.Registry
	LLM            llm.Client
	Coordinator    *resumes.Coordinator
	ResumesService *resumes.Service
	ResumesHandler *resumes.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	gate := validation.NewGate(cfg.MaxFileSizeBytes, cfg.AllowedContentTypes)
	readers := extract.NewRegistry(cfg.ParseTimeout)
	strategies := fields.NewRegistry(llmClient, cfg.FieldTimeout)
	coordinator := resumes.NewCoordinator(strategies, cfg.CoordinatorBudget)
	service := resumes.NewService(gate, readers, coordinator)
	handler := resumes.NewHandler(service)

	app := &App{
		Config:         cfg,
		Gate:           gate,
		Readers:        readers,
		LLM:            llmClient,
		Coordinator:    coordinator,
		ResumesService: service,
		ResumesHandler: handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		ResumesHandler: handler,
	})
	return app, nil
}

// buildLLM selects the provider and wraps it with transient-failure retries.
func buildLLM(cfg config.Config) (llm.Client, error) {
	var base llm.Client
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel)
		if err != nil {
			return nil, err
		}
		base = client
	default:
		base = placeholderClient{}
	}
	return llm.NewRetryingClient(base, cfg.LLMMaxRetries, cfg.LLMRetryBase), nil
}

// placeholderClient stands in when no provider is configured. Delegated
// strategies then report failures instead of fabricating values; pattern
// strategies keep working.
type placeholderClient struct{}

func (placeholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", errors.New("llm client not configured")
}
