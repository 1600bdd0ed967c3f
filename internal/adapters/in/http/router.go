package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance: request validation against the
// embedded OpenAPI document, the API routes, health and swagger UI.
func NewRouter(ctx context.Context, s *Server) (*echo.Echo, error) {
	openAPIRouter, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", OpenAPIValidator(openAPIRouter))
	api.POST("/updates", s.PostUpdate)
	api.GET("/sessions/:chatId", s.GetSession)

	return e, nil
}
