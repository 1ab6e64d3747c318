package routes

import (
	"net/http"
	"strings"
	"time"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/cultural-wonders/backend/internal/server/middleware"
	"github.com/cultural-wonders/backend/pkg/logger"
)

// GenerateStoryHandler narrates a cultural story about the given topic.
func GenerateStoryHandler(c echo.Context) error {
	type storyBody struct {
		Topic   string `json:"topic" validate:"required"`
		Context string `json:"context"`
	}

	type storyResponse struct {
		Success   bool   `json:"success"`
		Story     string `json:"story,omitempty"`
		Timestamp string `json:"timestamp"`
		Error     string `json:"error,omitempty"`
	}

	body := new(storyBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, storyResponse{
			Error:     "Topic is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
	if err := c.Validate(body); err != nil || strings.TrimSpace(body.Topic) == "" {
		return c.JSON(http.StatusBadRequest, storyResponse{
			Error:     "Topic is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	logger.Info("Received story generation request", "topic", body.Topic)

	pipeline := c.(*middleware.AppContext).App.Pipeline
	story := pipeline.Story(c.Request().Context(), body.Topic, body.Context)

	return c.JSON(http.StatusOK, storyResponse{
		Success:   true,
		Story:     story,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
