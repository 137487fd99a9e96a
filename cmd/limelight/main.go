package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/limelight-casting/limelight/internal/api"
	"github.com/limelight-casting/limelight/internal/config"
	"github.com/limelight-casting/limelight/internal/geo"
	"github.com/limelight-casting/limelight/internal/geocode"
	"github.com/limelight-casting/limelight/internal/notify"
	"github.com/limelight-casting/limelight/internal/recommend"
	"github.com/limelight-casting/limelight/internal/scoring"
	"github.com/limelight-casting/limelight/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	db, err := store.NewPostgresStore(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	// Event bus (optional)
	var busClient notify.Client
	if cfg.Nats.URL != "" {
		nc, err := notify.NewNATSClient(ctx, cfg.Nats.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to NATS, running with store-only notifications", "error", err)
		} else {
			busClient = nc
			defer nc.Close()
			logger.Info("connected to NATS")

			if err := nc.Subscribe("casting.submission.>", func(subject string, data []byte) {
				logger.Debug("submission event", "subject", subject, "bytes", len(data))
			}); err != nil {
				logger.Warn("failed to subscribe to submission events", "error", err)
			}
		}
	}
	notifier := notify.NewNotifier(db, busClient, logger)

	// Geocoder
	geocoder := geocode.NewNominatimClient(cfg.Geocoder.URL)
	fallback := geocode.Point{
		Coordinates: store.Coordinates{
			Latitude:  cfg.Geocoder.FallbackLatitude,
			Longitude: cfg.Geocoder.FallbackLongitude,
		},
		Name: cfg.Geocoder.FallbackName,
	}

	// Evaluation and ranking
	engine := scoring.NewEngine(logger)
	ranker := geo.NewRanker(cfg.Geo.NearbyRadiusKm)
	recommender := recommend.NewService(db, ranker, recommend.NewAffinityPolicy(db), logger)

	// API server
	router := api.NewRouter(api.RouterDeps{
		Store:          db,
		Engine:         engine,
		Recommend:      recommender,
		Geocoder:       geocoder,
		Notifier:       notifier,
		DefaultWeights: cfg.Scoring.DefaultWeights,
		Fallback:       fallback,
		AdminToken:     cfg.Server.AdminToken,
		Logger:         logger,
	})
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
