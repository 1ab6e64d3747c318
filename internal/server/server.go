package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	mid "github.com/cultural-wonders/backend/internal/server/middleware"
	"github.com/cultural-wonders/backend/internal/util"
	"github.com/cultural-wonders/backend/pkg/ai"
	"github.com/cultural-wonders/backend/pkg/ai/huggingface"
	"github.com/cultural-wonders/backend/pkg/ai/ollama"
	"github.com/cultural-wonders/backend/pkg/ai/openai"
	"github.com/cultural-wonders/backend/pkg/dataset"
	"github.com/cultural-wonders/backend/pkg/logger"
	"github.com/cultural-wonders/backend/pkg/resolve"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	facts := dataset.Default()
	pipeline := buildPipeline(facts)
	for _, status := range pipeline.Status().Providers {
		logger.Info("Provider configured", "provider", status.Name, "available", status.Available)
	}

	frontendURL := util.GetEnvString("FRONTEND_URL", "http://localhost:5173")

	e.Use(mid.AppContextMiddleware(pipeline, facts))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{frontendURL},
		AllowCredentials: true,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "5000")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// buildPipeline wires the resolution pipeline from the process
// environment, read exactly once here. Providers are ordered by
// preference: OpenAI, Hugging Face, then a local Ollama server.
func buildPipeline(facts *dataset.Collection) *resolve.Pipeline {
	providers := make([]ai.Provider, 0, 3)

	providers = append(providers, openai.NewClient(openai.NewClientParams{
		APIKey:  credential("OPENAI_API_KEY", "your_openai_api_key_here"),
		BaseURL: util.GetEnv("OPENAI_BASE_URL"),
		Model:   util.GetEnv("OPENAI_MODEL"),
	}))

	providers = append(providers, huggingface.NewClient(huggingface.NewClientParams{
		APIKey: credential("HUGGINGFACE_API_KEY", "your_huggingface_api_key_here"),
		Model:  util.GetEnv("HUGGINGFACE_MODEL"),
	}))

	ollamaClient, err := ollama.NewClient(ollama.NewClientParams{
		BaseURL:               util.GetEnv("OLLAMA_URL"),
		APIKey:                util.GetEnv("OLLAMA_API_KEY"),
		Model:                 util.GetEnv("OLLAMA_MODEL"),
		MaxConcurrentRequests: int64(util.GetEnvNumeric("OLLAMA_PARALLEL_REQ", 1)),
	})
	if err != nil {
		logger.Fatal("Failed to create Ollama client", "err", err)
	}
	providers = append(providers, ollamaClient)

	return resolve.NewPipeline(resolve.NewPipelineParams{
		Facts:     facts,
		Providers: providers,
	})
}

// credential reads one provider credential, normalizing the placeholder
// value that ships in .env templates to "not configured".
func credential(key, placeholder string) string {
	value := util.GetEnv(key)
	if value == placeholder {
		return ""
	}
	return value
}
