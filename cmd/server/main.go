package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/fitpro/fitpro-api/docs"
	"github.com/fitpro/fitpro-api/internal/api"
	"github.com/fitpro/fitpro-api/internal/api/metrics"
	"github.com/fitpro/fitpro-api/internal/core/ports"
	"github.com/fitpro/fitpro-api/internal/core/service"
	"github.com/fitpro/fitpro-api/internal/infrastructure/config"
	boltdb "github.com/fitpro/fitpro-api/internal/infrastructure/db/bolt"
	mongodb "github.com/fitpro/fitpro-api/internal/infrastructure/db/mongo"
	redisdb "github.com/fitpro/fitpro-api/internal/infrastructure/db/redis"
	"github.com/fitpro/fitpro-api/internal/infrastructure/http/handlers"
	"github.com/fitpro/fitpro-api/pkg/logger"
)

const (
	sessionTokenTTL = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

// @title        FitPro API
// @version      1.0
// @description  Account directory, sessions, and profile health metrics for the FitPro fitness tracker.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		accounts ports.AccountRepository
		profiles ports.ProfileRepository
		sessions ports.SessionStore
		checks   = make(map[string]handlers.DependencyCheck)
	)

	switch cfg.Storage {
	case "bolt":
		store, err := boltdb.Open(cfg.Bolt.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Bolt.Path).Msg("failed to open bolt store")
		}
		defer store.Close()

		accounts, profiles, sessions = store, store, store
		checks["bolt"] = store.Ping
		log.Info().Str("path", cfg.Bolt.Path).Msg("using bolt storage")

	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("mongodb disconnect failed")
			}
		}()
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
		}

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		accounts = mongodb.NewAccountRepository(db)
		profiles = mongodb.NewProfileRepository(db)
		sessions = redisdb.NewSessionStore(rdb)
		checks["mongodb"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb storage")

	default:
		log.Fatal().Str("storage", cfg.Storage).Msg("unknown storage backend, expected mongo or bolt")
	}

	authService := service.NewAuthService(accounts, sessions, cfg.JWTSecret, sessionTokenTTL, log)
	profileService := service.NewProfileService(profiles, accounts, log)
	if cfg.SimulatedLatency > 0 {
		authService.SimulateLatency(cfg.SimulatedLatency)
		profileService.SimulateLatency(cfg.SimulatedLatency)
		log.Info().Dur("latency", cfg.SimulatedLatency).Msg("simulated latency enabled")
	}

	if cfg.DemoAccount {
		if err := authService.BootstrapDemoAccount(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to bootstrap demo account")
		}
	}

	// Pick up a session that survived the previous run, if any.
	if session, err := authService.RestoreSession(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed")
	} else if session != nil {
		metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
		log.Info().Str("account_id", session.AccountID).Msg("restored persisted session")
	} else {
		metrics.SessionRestoresTotal.WithLabelValues("none").Inc()
	}

	e := api.NewRouter(authService, profileService, cfg.JWTSecret, checks, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
