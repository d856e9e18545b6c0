package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/moraputalapraveen/hireme4u-backend/internal/auth"
	"github.com/moraputalapraveen/hireme4u-backend/internal/cache"
	"github.com/moraputalapraveen/hireme4u-backend/internal/cleanup"
	"github.com/moraputalapraveen/hireme4u-backend/internal/config"
	"github.com/moraputalapraveen/hireme4u-backend/internal/database"
	"github.com/moraputalapraveen/hireme4u-backend/internal/handler"
	"github.com/moraputalapraveen/hireme4u-backend/internal/ingest"
	"github.com/moraputalapraveen/hireme4u-backend/internal/logger"
	"github.com/moraputalapraveen/hireme4u-backend/internal/repository"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Logger     *zap.Logger
	Config     *config.Config
	TokenMaker *auth.JWTMaker
	Handler    *handler.Handler
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.MaxConnLifetime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	if err := database.Bootstrap(ctx, pool); err != nil {
		sugar.Fatal(err)
	}

	repo := repository.NewRepository(pool)

	var facets *cache.FacetCache
	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, redisClient); err != nil {
		sugar.Warnw("redis unavailable, facet caching disabled", "err", err)
	} else {
		facets = cache.NewFacetCache(redisClient, cfg.Redis.FacetTTL)
	}

	tokenMaker := auth.NewJWTMaker(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	cleaner, err := cleanup.NewCleaner(repo.Jobs, log,
		cfg.Cleanup.RetentionDays, cfg.Cleanup.Schedule, cfg.Cleanup.Timezone)
	if err != nil {
		sugar.Fatal(err)
	}
	defer cleaner.Stop()

	h := &handler.Handler{
		Logger:     log,
		Jobs:       repo.Jobs,
		Admins:     repo.Admins,
		Visitors:   repo.Visitors,
		Analytics:  repo.Analytics,
		TokenMaker: tokenMaker,
		Facets:     facets,
		Importer:   ingest.NewService(repo.Jobs, log),
		UploadDir:  cfg.Upload.Dir,
	}

	app := &application{
		DB:         pool,
		Logger:     log,
		Config:     cfg,
		TokenMaker: tokenMaker,
		Handler:    h,
	}

	if err := app.serve(ctx); err != nil {
		sugar.Fatal(err)
	}
}
