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
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/shipease/logistics-api/internal/api"
	"github.com/shipease/logistics-api/internal/infrastructure/db/mongo"
	"github.com/shipease/logistics-api/internal/infrastructure/db/redis"
	"github.com/shipease/logistics-api/internal/pkg/config"
	"github.com/shipease/logistics-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	e, dispatcher := api.NewRouter(db, rdb, cfg.JWTSecret, log)
	dispatcher.Start(ctx)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// ensureIndexes creates all collection indexes at startup, including the
// unique tracking_code index that backs collision handling for generated codes.
func ensureIndexes(ctx context.Context, db *mongodriver.Database) error {
	if err := mongo.NewShipmentRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongo.NewEventRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongo.NewNotificationRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongo.NewProfileRepository(db).EnsureIndexes(ctx)
}
