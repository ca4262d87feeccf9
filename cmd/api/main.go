package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petcare-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/petcare-manager/internal/db"
	"github.com/BruksfildServices01/petcare-manager/internal/infra/ratelimit"
	"github.com/BruksfildServices01/petcare-manager/internal/infra/storage"
	"github.com/BruksfildServices01/petcare-manager/internal/logger"
	"github.com/BruksfildServices01/petcare-manager/internal/observability"
	"github.com/BruksfildServices01/petcare-manager/internal/routes"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	timezone.Configure(cfg.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := dbpkg.NewDB(cfg)

	// --------------------------------------------------
	// Métricas
	// --------------------------------------------------
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)

	// --------------------------------------------------
	// Rate limit (Redis opcional)
	// --------------------------------------------------
	var limiter ratelimit.Limiter = ratelimit.Unlimited{}
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, public rate limit fails open", zap.Error(err))
		}
		limiter = ratelimit.NewRedisLimiter(client, cfg.PublicRateLimit, cfg.PublicRateWindow, "petcare:ratelimit")
	} else {
		log.Info("REDIS_URL not set, public rate limit disabled")
	}

	// --------------------------------------------------
	// Fotos (S3 opcional)
	// --------------------------------------------------
	var store storage.Store = storage.Disabled{}
	if cfg.StorageEnabled() {
		s3Store, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatal("failed to configure photo storage", zap.Error(err))
		}
		store = s3Store
	} else {
		log.Info("S3_BUCKET not set, pet photo uploads disabled")
	}

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, db, cfg, routes.Infra{
		Logger:   log,
		Store:    store,
		Limiter:  limiter,
		Metrics:  metrics,
		Gatherer: registry,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
