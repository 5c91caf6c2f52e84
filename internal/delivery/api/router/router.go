// Package router contains routing and server setup for the API delivery.
package router

import (
	"tankwatch/internal/delivery"
	"tankwatch/internal/delivery/api/middleware"
	"tankwatch/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CallableHandler     *handler.CallableHandler
	TokenHandler        *handler.TokenHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	callableHandler     *handler.CallableHandler
	tokenHandler        *handler.TokenHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		callableHandler:     params.CallableHandler,
		tokenHandler:        params.TokenHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(delivery.HealthPath, handler.HealthCheck)

	// Callables carry the caller's ID token
	e.POST("/registerDevice", r.callableHandler.RegisterDevice, r.authMiddleware.IdentifyCaller)
	e.POST("/saveFCMToken", r.callableHandler.SaveFCMToken, r.authMiddleware.IdentifyCaller)

	// Devices authenticate with their secret
	e.Match([]string{echo.GET, echo.POST}, "/getNewToken", r.tokenHandler.GetNewToken, r.rateLimitMiddleware.Limit)
}
