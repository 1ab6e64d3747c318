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

// CulturalSearchHandler answers a free-text cultural search query.
func CulturalSearchHandler(c echo.Context) error {
	type searchBody struct {
		Query string `json:"query" validate:"required"`
	}

	type searchResponse struct {
		Success   bool   `json:"success"`
		Results   string `json:"results,omitempty"`
		Timestamp string `json:"timestamp"`
		Error     string `json:"error,omitempty"`
	}

	body := new(searchBody)
	if err := c.Bind(body); err != nil {
		return c.JSON(http.StatusBadRequest, searchResponse{
			Error:     "Search query is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
	if err := c.Validate(body); err != nil || strings.TrimSpace(body.Query) == "" {
		return c.JSON(http.StatusBadRequest, searchResponse{
			Error:     "Search query is required",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	logger.Info("Received cultural search request")

	pipeline := c.(*middleware.AppContext).App.Pipeline
	results := pipeline.Search(c.Request().Context(), body.Query)

	return c.JSON(http.StatusOK, searchResponse{
		Success:   true,
		Results:   results,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
