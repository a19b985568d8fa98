package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"dishdash/config"
	"dishdash/database"
	apperrors "dishdash/errors"
	"dishdash/events"
	"dishdash/handlers"
	"dishdash/logging"
	"dishdash/middleware"
	"dishdash/service"
	"dishdash/store"
	"dishdash/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// run wires the store, service and HTTP server and blocks until a shutdown signal.
func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Info("publishing change events", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.Topic))
	}
	defer publisher.Close()

	svc := service.NewRestaurantService(st, publisher, logger)

	if cfg.SeedFile != "" {
		if err := seed(ctx, svc, cfg.SeedFile, logger); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      newHandler(cfg.Server, svc, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", slog.String("port", cfg.Server.Port), slog.String("store", cfg.Database.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return worker.NewStatsWorker(st, cfg.StatsInterval, logger).Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStore selects the backing store for cfg.Driver.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (store.RestaurantStore, func(), error) {
	if cfg.Driver == config.DriverMemory {
		return store.NewMemory(), func() {}, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := database.Migrate(migrateCtx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store.NewPostgres(db), func() { db.Close() }, nil
}

// seed adds every restaurant in path, skipping those whose website is already taken.
func seed(ctx context.Context, svc *service.RestaurantService, path string, logger *slog.Logger) error {
	reqs, err := store.LoadSeed(path)
	if err != nil {
		return err
	}

	added := 0
	for _, req := range reqs {
		_, err := svc.Add(ctx, req)
		switch {
		case err == nil:
			added++
		case apperrors.Is(err, apperrors.ErrCodeConflict):
			logger.Info("seed restaurant already present", slog.String("name", req.Name), slog.String("website", req.Website))
		default:
			return fmt.Errorf("seed %q: %w", req.Name, err)
		}
	}
	logger.Info("seed applied", slog.String("file", path), slog.Int("added", added), slog.Int("total", len(reqs)))
	return nil
}

// newHandler assembles the API routes, probes and metrics behind CORS.
func newHandler(cfg config.ServerConfig, svc handlers.RestaurantService, logger *slog.Logger) http.Handler {
	api := http.NewServeMux()
	handlers.RegisterRoutes(api, svc)

	mux := http.NewServeMux()
	mux.Handle("/api/", middleware.Chain(api,
		middleware.Metrics,
		middleware.RequestID,
		middleware.Recover,
		middleware.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)),
		middleware.Logging(logger),
	))
	mux.HandleFunc("GET /health", handlers.HealthHandler())
	mux.HandleFunc("GET /ready", handlers.ReadyHandler(svc, logger))
	mux.Handle("GET /metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	})
	return c.Handler(mux)
}
