package server

import (
	"github.com/OFFIS-RIT/lingraph/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Input description routes
	apiRoutes.GET("/schema", routes.GetSchemaHandler)
	apiRoutes.GET("/vocabulary", routes.GetVocabularyHandler)

	// Graph routes
	apiRoutes.POST("/graphs", routes.CreateGraphHandler)
	apiRoutes.POST("/graphs/jobs", routes.CreateGraphJobHandler)
}
