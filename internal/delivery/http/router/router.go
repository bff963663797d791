// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accountGroup := e.Group("/accounts")
	{
		accountGroup.POST("", r.accountHandler.CreateAccount)
		accountGroup.GET("", r.accountHandler.ListAccounts)
		accountGroup.GET("/:id", r.accountHandler.GetAccount)
		accountGroup.PUT("/:id", r.accountHandler.UpdateAccount)
		accountGroup.DELETE("/:id", r.accountHandler.DeleteAccount)
		accountGroup.PUT("/:id/password", r.accountHandler.ChangePassword)
	}
}
