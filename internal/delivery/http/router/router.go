// Package router wires the HTTP handlers to their routes.
package router

import (
	"dietplan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers injected by Fx.
type RouterParams struct {
	fx.In

	DietHandler   *handler.DietHandler
	HealthHandler *handler.HealthHandler
}

type router struct {
	dietHandler   *handler.DietHandler
	healthHandler *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		dietHandler:   params.DietHandler,
		healthHandler: params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	dietGroup := e.Group("/api/v1/diets")
	{
		dietGroup.POST("/daily", r.dietHandler.GenerateDaily)
		dietGroup.POST("/family", r.dietHandler.GenerateFamily)
		dietGroup.POST("/weekly", r.dietHandler.GenerateWeekly)
		dietGroup.GET("/weekly/:userId/:weekStart", r.dietHandler.GetWeekly)
		dietGroup.GET("/weekly/:userId/:weekStart/shopping-list/qr", r.dietHandler.GetShoppingListQR)
	}
}
