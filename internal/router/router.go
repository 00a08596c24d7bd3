// Package router wires HTTP routes to handlers and applies the gate
// middleware per route group.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/config"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/handler"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/middleware"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/model"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/repository"
)

// RegisterRoutes registers the whole API surface. The groups encode the
// authorization model: public reads carry no gate, /v1 requires a valid
// access token, and the admin group additionally requires the admin role.
func RegisterRoutes(e *echo.Echo, cfg config.Config, stores repository.Stores, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	auth := handler.NewAuthHandler(cfg, stores.Users, stores.Tokens)
	events := handler.NewEventHandler(stores.Events)
	bookings := handler.NewBookingHandler(stores.Bookings, stores.Users)
	adminBookings := handler.NewAdminBookingHandler(stores.Bookings)

	// Unauthenticated auth operations.
	ag := e.Group("/v1/auth")
	ag.POST("/register", auth.Register)
	ag.POST("/login", auth.Login)
	ag.POST("/refresh", auth.Refresh)
	ag.POST("/logout", auth.Logout)

	// Public catalog reads, response-cached when Redis is available.
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	e.GET("/v1/events", events.ListEvents, cache)
	e.GET("/v1/events/:id", events.GetEvent, cache)

	// Authenticated routes: any valid account.
	authed := e.Group("/v1")
	authed.Use(middleware.JWTAuth(cfg.JWTSecret))
	authed.GET("/me", auth.Me)
	authed.POST("/bookings", bookings.Submit)
	authed.GET("/bookings", bookings.ListOwn)

	// Admin routes: authenticated and admin-role only.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/events", events.CreateEvent)
	admin.PUT("/events/:id", events.UpdateEvent)
	admin.DELETE("/events/:id", events.DeleteEvent)
	admin.GET("/admin/bookings", adminBookings.ListAll)
	admin.PATCH("/admin/bookings/:id/status", adminBookings.UpdateStatus)
}
