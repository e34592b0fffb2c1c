package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/itsaryankaushik/Shipsy-sub001/config"
	"github.com/itsaryankaushik/Shipsy-sub001/db"
	authhandler "github.com/itsaryankaushik/Shipsy-sub001/internal/auth/handler"
	authrepo "github.com/itsaryankaushik/Shipsy-sub001/internal/auth/repository/postgres"
	authservice "github.com/itsaryankaushik/Shipsy-sub001/internal/auth/service"
	customerhandler "github.com/itsaryankaushik/Shipsy-sub001/internal/customer/handler"
	customerrepo "github.com/itsaryankaushik/Shipsy-sub001/internal/customer/repository/postgres"
	customerservice "github.com/itsaryankaushik/Shipsy-sub001/internal/customer/service"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/middleware"
	shipmenthandler "github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/handler"
	shipmentrepo "github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/repository/postgres"
	shipmentservice "github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/service"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.MustLoad()
	ctx := context.Background()

	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	userRepo := authrepo.NewPostgresUserRepository(pool)
	customerRepo := customerrepo.NewPostgresCustomerRepository(pool)
	shipmentRepo := shipmentrepo.NewPostgresShipmentRepository(pool)

	tokenService := authservice.NewTokenService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
	)
	userService := authservice.NewUserService(userRepo, tokenService, authservice.NewBcryptHasher())
	customerService := customerservice.NewCustomerService(customerRepo)
	shipmentService := shipmentservice.NewShipmentService(shipmentRepo, customerRepo)

	app := fiber.New(fiber.Config{
		AppName:               "shipsy",
		DisableStartupMessage: cfg.Env == "production",
	})
	app.Use(middleware.RequestLogger(logger))

	requireAuth := middleware.RequireAuth(tokenService)
	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(userService, tokenService), requireAuth)
	customerhandler.RegisterRoutes(app, customerhandler.NewCustomerHandler(customerService), requireAuth)
	shipmenthandler.RegisterRoutes(app, shipmenthandler.NewShipmentHandler(shipmentService), requireAuth)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		logger.Info().Msg("shutting down")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
