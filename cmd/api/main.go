package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	eventsHttp "funnel-analytics-service/internal/events/adapters/http/fiber"
	eventsRepoPg "funnel-analytics-service/internal/events/adapters/postgres"
	eventsUsecase "funnel-analytics-service/internal/events/core/usecase"

	funnelHttp "funnel-analytics-service/internal/funnel/adapters/http/fiber"
	funnelRepoPg "funnel-analytics-service/internal/funnel/adapters/postgres"
	funnelUsecase "funnel-analytics-service/internal/funnel/core/usecase"

	"funnel-analytics-service/internal/config"
	"funnel-analytics-service/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "funnel-analytics-service/docs"
)

func main() {
	// .env is a local convenience; absence is fine.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// DB connection
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open postgres")
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database.MigrationsPath, cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Adapter-level DB wrappers
	eventsDB := eventsRepoPg.NewSQLDB(db)
	funnelDB := funnelRepoPg.NewSQLDB(db)

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsDB)
	funnelRepository := funnelRepoPg.NewFunnelRepository(funnelDB)

	// Use cases
	trackEventUC := eventsUsecase.NewTrackEventUseCase(eventRepository)
	listEventsUC := eventsUsecase.NewListEventsUseCase(eventRepository)
	getFunnelUC := funnelUsecase.NewGetFunnelUseCase(funnelRepository).
		WithQueryTimeout(cfg.QueryTimeout())
	getEventCountsUC := funnelUsecase.NewGetEventCountsUseCase(funnelRepository)
	getTopProductsUC := funnelUsecase.NewGetTopProductsUseCase(funnelRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// ingestion + raw data endpoints
	eventsHandler := eventsHttp.NewEventHandler(trackEventUC, listEventsUC, log)
	app.Post("/track-event", eventsHandler.TrackEvent)
	app.Get("/data", eventsHandler.ListEvents)

	// aggregation endpoints
	funnelHandler := funnelHttp.NewFunnelHandler(getFunnelUC, getEventCountsUC, getTopProductsUC, log)
	app.Get("/product-performance", funnelHandler.GetProductPerformance)
	app.Get("/event-counts", funnelHandler.GetEventCounts)
	app.Get("/top-viewed-products", funnelHandler.GetTopViewedProducts)
	app.Get("/top-added-to-cart-products", funnelHandler.GetTopAddedToCartProducts)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}
