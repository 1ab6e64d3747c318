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

// HistoricalPerspectiveHandler narrates a tradition as it was experienced
// two centuries ago.
func HistoricalPerspectiveHandler(c echo.Context) error {
	type perspectiveBody struct {
		Tradition string `json:"tradition" validate:"required"`
		Context   string `json:"context"`
	}

	type perspectiveResponse struct {
		Success     bool   `json:"success"`
		Perspective string `json:"perspective,omitempty"`
		Timestamp   string `json:"timestamp"`
		Error       string `json:"error,omitempty"`
	}

	body := new(perspectiveBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, perspectiveResponse{
			Error:     "Tradition is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
	if err := c.Validate(body); err != nil || strings.TrimSpace(body.Tradition) == "" {
		return c.JSON(http.StatusBadRequest, perspectiveResponse{
			Error:     "Tradition is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	logger.Info("Received historical perspective request", "tradition", body.Tradition)

	pipeline := c.(*middleware.AppContext).App.Pipeline
	perspective := pipeline.HistoricalPerspective(c.Request().Context(), body.Tradition, body.Context)

	return c.JSON(http.StatusOK, perspectiveResponse{
		Success:     true,
		Perspective: perspective,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}
