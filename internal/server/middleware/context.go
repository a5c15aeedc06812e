package middleware

import (
	"github.com/OFFIS-RIT/lingraph/internal/queue"
	"github.com/OFFIS-RIT/lingraph/pkg/graph"

	"github.com/labstack/echo/v4"
)

type App struct {
	Graph *graph.GraphClient
	// Queue is nil when the server runs without RabbitMQ.
	Queue queue.Channel
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
