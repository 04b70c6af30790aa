package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ghiblihub/catalog-api/docs"
	"github.com/ghiblihub/catalog-api/internal/api/handler"
	"github.com/ghiblihub/catalog-api/internal/api/middleware"
	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// LoginLimiter throttles login attempts per client and forgets a client
// once it logs in.
type LoginLimiter interface {
	middleware.AttemptLimiter
	handler.AttemptResetter
}

// Dependencies is everything NewRouter wires into the HTTP surface.
type Dependencies struct {
	Log         zerolog.Logger
	CORSOrigins []string

	Tokens  ports.TokenValidator
	Auth    ports.AuthService
	Users   ports.UserService
	Catalog ports.CatalogService

	// LoginLimiter is optional; nil disables login throttling.
	LoginLimiter LoginLimiter
	HealthChecks map[string]handler.HealthCheck

	// Registerer and Gatherer default to the prometheus globals.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}
	if len(d.CORSOrigins) == 0 {
		d.CORSOrigins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: d.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "catalog_api",
		Registerer: d.Registerer,
	}))

	// --- Handlers ---
	var (
		limiter  middleware.AttemptLimiter
		resetter handler.AttemptResetter
	)
	if d.LoginLimiter != nil {
		limiter = d.LoginLimiter
		resetter = d.LoginLimiter
	}
	authHandler := handler.NewAuthHandler(d.Auth, resetter, d.Log)
	userHandler := handler.NewUserHandler(d.Users, d.Log)
	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	healthHandler := handler.NewHealthHandler(d.HealthChecks)

	// --- Operational routes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	v1.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(limiter, d.Log))

	// --- User administration (admin only) ---
	users := v1.Group("/users", middleware.Require(d.Tokens, domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Catalog proxy, one role per resource ---
	ghibli := v1.Group("/ghibli")
	ghibli.GET("/films", catalogHandler.Films, middleware.Require(d.Tokens, domain.RoleFilms))
	ghibli.GET("/people", catalogHandler.People, middleware.Require(d.Tokens, domain.RolePeople))
	ghibli.GET("/locations", catalogHandler.Locations, middleware.Require(d.Tokens, domain.RoleLocations))
	ghibli.GET("/species", catalogHandler.Species, middleware.Require(d.Tokens, domain.RoleSpecies))
	ghibli.GET("/vehicles", catalogHandler.Vehicles, middleware.Require(d.Tokens, domain.RoleVehicles))

	return e
}
