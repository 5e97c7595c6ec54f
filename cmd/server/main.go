package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"ferry/internal/audit"
	"ferry/internal/auth"
	"ferry/internal/auth/revocation"
	"ferry/internal/court/handler"
	"ferry/internal/court/perms"
	"ferry/internal/court/service"
	"ferry/internal/court/store"
	"ferry/internal/platform/config"
	"ferry/internal/platform/httpserver"
	"ferry/internal/platform/logger"
	"ferry/internal/platform/metrics"
	"ferry/internal/platform/middleware"
	"ferry/internal/platform/redis"
	"ferry/internal/platform/telemetry"
)

// main wires dependencies and runs the server lifecycle. Business logic lives
// in internal/court.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, "ferry", cfg.OTLPEndpoint)
	if err != nil {
		log.Error("telemetry setup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	courtStore := store.NewPostgres(db)
	if err := courtStore.EnsureSchema(ctx); err != nil {
		log.Error("ensure schema", "error", err)
		os.Exit(1)
	}

	// Revocation falls back to the in-process list when redis is not
	// configured, e.g. local development.
	var revocations middleware.RevocationChecker = revocation.NewMemoryList()
	rdb, err := redis.New(cfg.RedisAddr)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if rdb != nil {
		revocations = revocation.NewRedisList(rdb.Client)
		defer func() { _ = rdb.Close() }()
	}

	var publisher audit.Publisher
	if len(cfg.KafkaBrokers) != 0 {
		kafkaPublisher, err := audit.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AuditTopic, func(err error) {
			log.Error("audit delivery failed", "error", err)
		})
		if err != nil {
			log.Error("connect kafka", "error", err)
			os.Exit(1)
		}
		publisher = kafkaPublisher
	} else {
		publisher = audit.NewLogPublisher(log)
	}
	defer publisher.Close()

	m := metrics.New()
	engine := perms.NewEngine(perms.Policy{AccuserMayDelete: cfg.AccuserMayDelete})
	court := service.New(courtStore, engine, publisher, m, log)
	tokens := auth.NewTokenService(cfg.JWTSigningKey, "ferry")

	router := chi.NewRouter()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.ClientMetadata)
	router.Use(middleware.Logger(log))
	router.Use(middleware.Timeout(30 * time.Second))
	router.Use(middleware.Latency(m))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens, revocations, log))
		handler.New(court, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting ferry", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
