// Package api wires the storefront's HTTP surface: routes, middleware, and
// the error-to-page mapping.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/agrigo/storefront/internal/api/handler"
	"github.com/agrigo/storefront/internal/api/middleware"
	"github.com/agrigo/storefront/internal/core/domain"
	"github.com/agrigo/storefront/internal/core/service"
	"github.com/agrigo/storefront/internal/infrastructure/backend"
	"github.com/agrigo/storefront/internal/infrastructure/config"
	redisdb "github.com/agrigo/storefront/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Backend.BaseURL)

	// --- Dependencies ---
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)
	sessions := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	authService := service.NewAuthService(client, sessions, log)
	dashboardService := service.NewDashboardService(client, log)
	catalogService := service.NewCatalogService(client, log)
	orderService := service.NewOrderService(client, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Session.Secret, dashboardService.Forget)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, cfg.Backend.BaseURL)
	catalogHandler := handler.NewCatalogHandler(catalogService, log)
	ordersHandler := handler.NewOrdersHandler(orderService)

	sessionMW := middleware.Session(cfg.Session.Secret, sessions)
	farmerOnly := middleware.RequireRole(domain.RoleFarmer)

	// --- Public routes ---
	e.GET("/", catalogHandler.Home)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/signup", authHandler.SignupPage)
	e.POST("/signup", authHandler.Signup)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb, client)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Session-guarded routes ---
	auth := e.Group("", sessionMW)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/products", catalogHandler.Products)
	auth.POST("/cart", catalogHandler.AddToCart)
	auth.GET("/orders", ordersHandler.Orders)
	auth.GET("/orders/:id", ordersHandler.Order)
	auth.POST("/orders/:id/status", ordersHandler.UpdateStatus)

	// --- Farmer dashboard ---
	dash := e.Group("/dashboard", sessionMW, farmerOnly)
	dash.GET("", dashboardHandler.Dashboard)
	dash.POST("/products", dashboardHandler.SaveProduct)
	dash.GET("/products/cancel-edit", dashboardHandler.CancelEdit)
	dash.GET("/products/:id/edit", dashboardHandler.EditProduct)
	dash.POST("/products/:id/delete", dashboardHandler.DeleteProduct)
	dash.POST("/orders/:id/status", dashboardHandler.UpdateOrderStatus)

	return e
}
