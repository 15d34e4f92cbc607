package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoply/storefront-api/internal/api/handler"
	"github.com/shoply/storefront-api/internal/api/middleware"
	"github.com/shoply/storefront-api/internal/core/ports"

	_ "github.com/shoply/storefront-api/docs" // swagger artifacts
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	AuthService    ports.AuthService
	CatalogService ports.CatalogService
	Tokens         ports.TokenManager
	DB             *mongo.Database
	Redis          *redis.Client
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	e.POST("/api/auth/signup", authHandler.Signup)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Product routes ---
	// The catalog is readable and writable with an optional identity: the
	// guard resolves a valid bearer token but anonymous and stale tokens
	// pass through. Swap in middleware.RequireAuth to harden a route.
	productHandler := handler.NewProductHandler(deps.CatalogService)
	products := e.Group("/api/products", middleware.OptionalAuth(deps.Tokens, deps.Logger))
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
