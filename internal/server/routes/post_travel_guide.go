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

// TravelGuideHandler plans a day-wise cultural itinerary for a state.
func TravelGuideHandler(c echo.Context) error {
	type travelGuideBody struct {
		State    string `json:"state" validate:"required"`
		Duration int    `json:"duration"`
	}

	type travelGuideResponse struct {
		Success   bool   `json:"success"`
		Itinerary string `json:"itinerary,omitempty"`
		Timestamp string `json:"timestamp"`
		Error     string `json:"error,omitempty"`
	}

	body := new(travelGuideBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, travelGuideResponse{
			Error:     "State is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
	if err := c.Validate(body); err != nil || strings.TrimSpace(body.State) == "" {
		return c.JSON(http.StatusBadRequest, travelGuideResponse{
			Error:     "State is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
	if body.Duration <= 0 {
		body.Duration = 5
	}

	logger.Info("Received travel guide request", "state", body.State, "duration", body.Duration)

	pipeline := c.(*middleware.AppContext).App.Pipeline
	itinerary := pipeline.TravelItinerary(c.Request().Context(), body.State, body.Duration)

	return c.JSON(http.StatusOK, travelGuideResponse{
		Success:   true,
		Itinerary: itinerary,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
