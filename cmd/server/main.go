package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"user-registry/internal/application/services"
	"user-registry/internal/config"
	"user-registry/internal/delivery/handler"
	"user-registry/internal/infrastructure/db"
	"user-registry/internal/infrastructure/logging"
)

func main() {
	cfg := config.Load()

	logWriter, err := logging.NewWriter(cfg.LogDir)
	if err != nil {
		log.Fatal("failed to set up logging: ", err)
	}

	// Schema setup must finish before the server accepts requests; any
	// failure here is fatal.
	gormDB, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	userRepo := db.NewUserRepository(gormDB)
	userService := services.NewUserService(userRepo)
	h := handler.NewHandler(userService)

	renderer, err := handler.NewRenderer()
	if err != nil {
		log.Fatal("failed to parse templates: ", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handler.NewFormValidator()
	e.Logger.SetOutput(logWriter)

	e.Use(middleware.Recover())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Output: logWriter}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))

	h.RegisterRoutes(e)

	e.Server.ReadHeaderTimeout = cfg.RequestTimeout
	e.Logger.Fatal(e.Start(":" + cfg.HTTPPort))
}
