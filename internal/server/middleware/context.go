package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/cultural-wonders/backend/pkg/dataset"
	"github.com/cultural-wonders/backend/pkg/resolve"
)

// App holds the process-wide collaborators handlers need. The pipeline is
// constructed once at startup with its provider configuration injected;
// request handling never reads the environment.
type App struct {
	Pipeline *resolve.Pipeline
	Facts    *dataset.Collection
}

// AppContext wraps the echo context with application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the shared App to every request context.
func AppContextMiddleware(pipeline *resolve.Pipeline, facts *dataset.Collection) echo.MiddlewareFunc {
	app := &App{Pipeline: pipeline, Facts: facts}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
