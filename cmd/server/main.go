package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/monoshop/storefront-gateway/internal/api"
	"github.com/monoshop/storefront-gateway/internal/core/ports"
	"github.com/monoshop/storefront-gateway/internal/infrastructure/backend"
	"github.com/monoshop/storefront-gateway/internal/infrastructure/config"
	mongodb "github.com/monoshop/storefront-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/monoshop/storefront-gateway/internal/infrastructure/db/redis"
	"github.com/monoshop/storefront-gateway/internal/infrastructure/payment"
	"github.com/monoshop/storefront-gateway/internal/pkg/bus"
	"github.com/monoshop/storefront-gateway/pkg/logger"

	_ "github.com/monoshop/storefront-gateway/docs"
)

// @title        Storefront Gateway API
// @version      1.0
// @description  HTTP gateway for the storefront: catalog, cart, checkout and order history over the commerce backend.
// @BasePath     /
func main() {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	journal := mongodb.NewPaymentJournal(db)
	if err := journal.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("payment journal index creation failed")
	}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)

	var provider ports.PaymentProvider
	switch cfg.Payment.Provider {
	case "widget":
		provider = payment.NewWidgetProvider(cfg.Payment.MidtransServerKey, cfg.Payment.MidtransProduction, log)
	case "redirect":
		provider = payment.NewRedirectProvider(client, cfg.Payment.ConfirmChannel, log)
	default:
		log.Fatal().Str("provider", cfg.Payment.Provider).Msg("unknown payment provider")
	}

	events := bus.New()
	e := api.NewRouter(cfg, db, rdb, client, provider, events, log)

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("payment_provider", cfg.Payment.Provider).
			Msg("storefront gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}

	// Let in-flight cart/auth notifications drain before exit.
	events.WaitAsync()
}
