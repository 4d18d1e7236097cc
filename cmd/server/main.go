package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"trustgate/internal/activity"
	"trustgate/internal/activity/publisher"
	"trustgate/internal/admin"
	"trustgate/internal/ban"
	httprouter "trustgate/internal/http"
	"trustgate/internal/platform/config"
	"trustgate/internal/platform/httpserver"
	"trustgate/internal/platform/logger"
	pgplatform "trustgate/internal/platform/postgres"
	redisplatform "trustgate/internal/platform/redis"
	"trustgate/internal/ratelimit"
	"trustgate/internal/verification"
	verificationhandler "trustgate/internal/verification/handler"
	"trustgate/internal/verification/metrics"
	"trustgate/pkg/jwttoken"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx := context.Background()

	db, err := pgplatform.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("postgres connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var (
		activityStore activity.Store
		banStore      ban.Store
	)
	if db != nil {
		if err := pgplatform.EnsureSchema(ctx, db); err != nil {
			log.Error("schema setup failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		activityStore = activity.NewPostgresStore(db)
		banStore = ban.NewPostgresStore(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		activityStore = activity.NewInMemoryStore()
		banStore = ban.NewInMemoryStore()
	}

	redisClient, err := redisplatform.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var limiter ratelimit.SignupLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisCounter(redisClient, cfg.RateLimitMaxAttempts, cfg.RateLimitWindow, log)
	} else {
		limiter = ratelimit.NewLogBacked(activityStore, cfg.RateLimitMaxAttempts, cfg.RateLimitWindow, log)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	verificationMetrics := metrics.New(registry)

	opts := []verification.Option{verification.WithMetrics(verificationMetrics)}
	if cfg.KafkaBrokers != "" {
		kafka, err := publisher.NewKafka(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		if err != nil {
			log.Error("kafka setup failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer kafka.Close()
		opts = append(opts, verification.WithPublisher(kafka))
	}

	service := verification.NewService(activityStore, banStore, limiter, log, opts...)
	tokens := jwttoken.NewService(cfg.JWTSigningKey, "trustgate", "trustgate-admin")

	router := httprouter.NewRouter(
		verificationhandler.New(service, log),
		admin.New(activityStore, banStore, log),
		tokens,
		registry,
		log,
	)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting trustgate", slog.String("addr", cfg.Addr))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
