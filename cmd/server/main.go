// Package main is the entry point for the Hexadigitall API: the
// pricing catalog, custom-build wizard, course enrollment, and service
// package endpoints.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"hexadigitall/internal/config"
	"hexadigitall/internal/handlers"
	"hexadigitall/internal/logger"
	"hexadigitall/internal/repositories"
	"hexadigitall/internal/repositories/cache"
	"hexadigitall/internal/services/catalog"
	"hexadigitall/internal/services/checkout"
	"hexadigitall/internal/services/currency"
	"hexadigitall/internal/services/enrollment"
	"hexadigitall/internal/services/notifier"
	"hexadigitall/internal/services/packages"
	"hexadigitall/internal/services/pricing"
	"hexadigitall/internal/services/wizard"
)

func main() {
	config.LoadEnv()

	zapLogger, err := logger.New()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := repositories.InitDB(); err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer repositories.CloseDB()

	// Core services
	catalogSvc := catalog.NewService()
	calculator := pricing.NewCalculator(catalogSvc)
	currencySvc := currency.NewService(currency.Config{
		LaunchStart: config.GetTimeEnv("LAUNCH_SPECIAL_START", time.Time{}),
		LaunchEnd:   config.GetTimeEnv("LAUNCH_SPECIAL_END", time.Time{}),
	})

	// External boundaries
	provider := checkout.NewStripeProvider(config.GetEnv("STRIPE_SECRET_KEY", ""), zapLogger)
	notifySvc := notifier.NewEmailService(
		config.GetEnv("RESEND_API_KEY", ""),
		config.GetEnv("QUOTE_FROM_EMAIL", "noreply@hexadigitall.com"),
		config.GetEnv("QUOTE_INTAKE_EMAIL", "hello@hexadigitall.com"),
		zapLogger,
	)

	// Repositories
	courseRepo := repositories.NewCourseRepository(repositories.DB, repositories.CacheService, zapLogger)
	packageRepo := repositories.NewServicePackageRepository(repositories.DB, repositories.CacheService, zapLogger)
	requestRepo := repositories.NewRequestRepository(repositories.DB)
	sessionStore := cache.NewSessionStore(repositories.CacheService)

	// Flows
	wizardSvc := wizard.NewService(sessionStore, catalogSvc, calculator, currencySvc, notifySvc, provider, requestRepo, zapLogger)
	enrollmentSvc := enrollment.NewService(courseRepo, currencySvc, provider, requestRepo, zapLogger)
	packagesSvc := packages.NewService(packageRepo, currencySvc, provider, zapLogger)

	app := fiber.New(fiber.Config{
		AppName:      "hexadigitall-api",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		AllowHeaders: "Origin, Content-Type, Accept, X-Region",
		AllowMethods: "GET,POST,PUT,DELETE",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use("/api", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT", 120),
		Expiration: time.Minute,
	}))

	handlers.SetupRoutes(app, handlers.Handlers{
		Catalog:        handlers.NewCatalogHandler(catalogSvc, currencySvc),
		Wizard:         handlers.NewWizardHandler(wizardSvc, currencySvc),
		Course:         handlers.NewCourseHandler(enrollmentSvc, currencySvc),
		ServicePackage: handlers.NewServicePackageHandler(packagesSvc, currencySvc),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		zapLogger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zapLogger.Error("shutdown failed", zap.Error(err))
		}
	}()

	port := config.GetEnv("PORT", "8080")
	zapLogger.Info("starting server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
