package routes

import (
	"net/http"
	"time"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/cultural-wonders/backend/internal/server/middleware"
	"github.com/cultural-wonders/backend/pkg/dataset"
)

// GetFactsHandler serves curated facts for suggestion UIs: all facts of
// one category when ?category= is given, otherwise a random sample of
// ?count= facts (default 5).
func GetFactsHandler(c echo.Context) error {
	type factsParams struct {
		Category string `query:"category"`
		Count    int    `query:"count"`
	}

	type factsResponse struct {
		Success    bool           `json:"success"`
		Facts      []dataset.Fact `json:"facts"`
		Categories []string       `json:"categories"`
		Timestamp  string         `json:"timestamp"`
	}

	params := new(factsParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}

	facts := c.(*middleware.AppContext).App.Facts

	var selected []dataset.Fact
	if params.Category != "" {
		selected = facts.ByCategory(params.Category)
	} else {
		count := params.Count
		if count <= 0 {
			count = 5
		}
		selected = facts.Random(count)
	}

	return c.JSON(http.StatusOK, factsResponse{
		Success:    true,
		Facts:      selected,
		Categories: facts.Categories(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}
