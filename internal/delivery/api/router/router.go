// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"playlog/config"
	"playlog/internal/delivery/api/middleware"
	"playlog/internal/delivery/api/router/handler"
	deliverymiddleware "playlog/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler    *handler.AccountHandler
	CatalogHandler    *handler.CatalogHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *deliverymiddleware.MetricsMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler    *handler.AccountHandler
	catalogHandler    *handler.CatalogHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsMiddleware *deliverymiddleware.MetricsMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:    params.AccountHandler,
		catalogHandler:    params.CatalogHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.catalogHandler.Instructions)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", r.metricsMiddleware.Handler())

	// Dataset routes
	e.GET("/sessions", r.catalogHandler.ListSessions)
	e.GET("/games", r.catalogHandler.ListGames)
	e.GET("/players", r.catalogHandler.ListPlayers)
	e.GET("/search", r.catalogHandler.SearchPlayers)

	// Account routes
	e.POST("/register", r.accountHandler.Register)
	e.POST("/login", r.accountHandler.Login)

	// Routes that require a bearer token
	e.GET("/allusers", r.accountHandler.ListUsers, r.authMiddleware.Authenticate)
	e.POST("/changepassword", r.accountHandler.ChangePassword, r.authMiddleware.Authenticate)

	if r.config.Auth != nil && r.config.Auth.ProtectDelete {
		e.DELETE("/delete/:id", r.accountHandler.DeleteUser,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireSelf("id"),
		)
	} else {
		e.DELETE("/delete/:id", r.accountHandler.DeleteUser)
	}
}
