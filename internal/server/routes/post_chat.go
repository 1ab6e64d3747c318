package routes

import (
	"net/http"
	"strings"
	"time"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/cultural-wonders/backend/internal/server/middleware"
	"github.com/cultural-wonders/backend/pkg/ai"
	"github.com/cultural-wonders/backend/pkg/logger"
)

// ChatHandler answers a free-text chat message through the resolution
// pipeline. Provider failures never surface here; the pipeline always
// produces an answer.
func ChatHandler(c echo.Context) error {
	type chatBody struct {
		Message             string           `json:"message" validate:"required"`
		ConversationHistory []ai.ChatMessage `json:"conversationHistory"`
	}

	type chatResponse struct {
		Success   bool   `json:"success"`
		Response  string `json:"response,omitempty"`
		RequestID string `json:"request_id,omitempty"`
		Timestamp string `json:"timestamp"`
		Error     string `json:"error,omitempty"`
	}

	body := new(chatBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, chatResponse{
			Error:     "Message is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
	if err := c.Validate(body); err != nil || strings.TrimSpace(body.Message) == "" {
		return c.JSON(http.StatusBadRequest, chatResponse{
			Error:     "Message is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	requestID, err := gonanoid.New()
	if err != nil {
		logger.Warn("Failed to generate request id", "err", err)
		requestID = ""
	}

	logger.Info("Received chat request",
		"request_id", requestID,
		"history_length", len(body.ConversationHistory),
	)

	pipeline := c.(*middleware.AppContext).App.Pipeline
	answer, stage := pipeline.Answer(c.Request().Context(), body.Message, body.ConversationHistory)

	logger.Info("Chat request resolved", "request_id", requestID, "stage", stage.String())

	return c.JSON(http.StatusOK, chatResponse{
		Success:   true,
		Response:  answer,
		RequestID: requestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
