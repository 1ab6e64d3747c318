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

// QuizHintHandler generates a hint for a quiz question without revealing
// the answer.
func QuizHintHandler(c echo.Context) error {
	type quizHintBody struct {
		Question string   `json:"question" validate:"required"`
		Options  []string `json:"options"`
	}

	type quizHintResponse struct {
		Success   bool   `json:"success"`
		Hint      string `json:"hint,omitempty"`
		Timestamp string `json:"timestamp"`
		Error     string `json:"error,omitempty"`
	}

	body := new(quizHintBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, quizHintResponse{
			Error:     "Question is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
	if err := c.Validate(body); err != nil || strings.TrimSpace(body.Question) == "" {
		return c.JSON(http.StatusBadRequest, quizHintResponse{
			Error:     "Question is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	logger.Info("Received quiz hint request", "options_count", len(body.Options))

	pipeline := c.(*middleware.AppContext).App.Pipeline
	hint := pipeline.QuizHint(c.Request().Context(), body.Question, body.Options)

	return c.JSON(http.StatusOK, quizHintResponse{
		Success:   true,
		Hint:      hint,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
