package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cultural-wonders/backend/internal/server/middleware"
	"github.com/cultural-wonders/backend/pkg/ai"
)

// AIStatusHandler reports which providers are configured. Availability is
// derived from configuration on every call, never cached.
func AIStatusHandler(c echo.Context) error {
	type statusResponse struct {
		Providers []ai.Status `json:"providers"`
		Primary   string      `json:"primary"`
		Timestamp string      `json:"timestamp"`
	}

	status := c.(*middleware.AppContext).App.Pipeline.Status()

	return c.JSON(http.StatusOK, statusResponse{
		Providers: status.Providers,
		Primary:   status.Primary,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
