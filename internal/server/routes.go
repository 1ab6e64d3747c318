package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cultural-wonders/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "OK",
			"message":   "Cultural Heritage Chatbot API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	apiRoutes := e.Group("/api")

	// Chat routes
	apiRoutes.POST("/chat", routes.ChatHandler)
	apiRoutes.GET("/ai-status", routes.AIStatusHandler)

	// Feature routes
	apiRoutes.POST("/quiz-hint", routes.QuizHintHandler)
	apiRoutes.POST("/generate-story", routes.GenerateStoryHandler)
	apiRoutes.POST("/travel-guide", routes.TravelGuideHandler)
	apiRoutes.POST("/historical-perspective", routes.HistoricalPerspectiveHandler)
	apiRoutes.POST("/cultural-search", routes.CulturalSearchHandler)

	// Dataset routes
	apiRoutes.GET("/facts", routes.GetFactsHandler)
}
