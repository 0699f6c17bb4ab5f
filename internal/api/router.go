package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lostpaws/petfinder-system/internal/api/handler"
	"github.com/lostpaws/petfinder-system/internal/api/middleware"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
	"github.com/lostpaws/petfinder-system/internal/core/service"
	"github.com/lostpaws/petfinder-system/internal/infrastructure/config"
	mongodb "github.com/lostpaws/petfinder-system/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The mailer is the queue-backed dispatcher so registration never blocks on
// mail delivery.
func NewRouter(db *mongo.Database, rdb *redis.Client, mailer ports.Mailer, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("petfinder"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	adRepo := mongodb.NewAdRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokens, mailer, cfg.AccessTTL, cfg.RefreshTTL, cfg.VerifyTTL, log)
	adService := service.NewAdService(adRepo, log)

	authHandler := handler.NewAuthHandler(authService, tokens, cfg.AccessTTL, cfg.RefreshTTL)
	userHandler := handler.NewUserHandler(authService)
	adHandler := handler.NewAdHandler(adService)
	session := middleware.Session(tokens)

	// --- Auth & session routes ---
	e.POST("/register", authHandler.Register)
	e.GET("/verify", authHandler.Verify)
	e.POST("/login", authHandler.Login)
	e.GET("/refresh", authHandler.Refresh)
	e.GET("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me)

	// --- Profile routes (session required) ---
	e.GET("/user", userHandler.Get, session)
	e.PUT("/user/name", userHandler.UpdateName, session)
	e.PUT("/user/email", userHandler.UpdateEmail, session)
	e.PUT("/user/phone", userHandler.UpdatePhone, session)
	e.PUT("/user/password", userHandler.UpdatePassword, session)

	// --- Ad catalog ---
	e.POST("/ads/create", adHandler.Create, session)
	e.POST("/ads/get", adHandler.List)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
