// Storefront API server.
//
// @title        Storefront API
// @version      1.0
// @description  Auth and product catalog backend for the mobile shopping client.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shoply/storefront-api/internal/api"
	"github.com/shoply/storefront-api/internal/core/service"
	mongodb "github.com/shoply/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shoply/storefront-api/internal/infrastructure/db/redis"
	"github.com/shoply/storefront-api/internal/infrastructure/queue"
	"github.com/shoply/storefront-api/internal/pkg/config"
	"github.com/shoply/storefront-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; this also catches a missing JWT_SECRET,
		// which must abort startup instead of defaulting.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Stores ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		// The unique email index is what makes signup uniqueness atomic;
		// running without it is not acceptable.
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}
	productRepo := mongodb.NewProductRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	// --- Services ---
	audit := queue.NewAuditDispatcher(0, auditRepo, log)
	audit.Start(ctx)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, audit, log)
	catalogService := service.NewCatalogService(productRepo, redisdb.NewCatalogCache(rdb), log)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		AuthService:    authService,
		CatalogService: catalogService,
		Tokens:         tokens,
		DB:             db,
		Redis:          rdb,
		Logger:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
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
