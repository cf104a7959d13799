package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flighttrack-service/internal/infrastructure/config"
	"flighttrack-service/internal/infrastructure/persistence"
	"flighttrack-service/internal/interface/handler"
	"flighttrack-service/internal/interface/provider"
	mongoRepo "flighttrack-service/internal/interface/repository"
	flightUsecase "flighttrack-service/internal/usecase"
	"flighttrack-service/pkg/clock"
	"flighttrack-service/pkg/logger"
	"flighttrack-service/pkg/metrics"
	"flighttrack-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flighttrack Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Civil clock shared by every date comparison
	wibClock := clock.New()

	// Set up repositories
	cacheRepo := mongoRepo.NewMongoFlightCacheRepository(db, wibClock, log)
	usageRepo := mongoRepo.NewMongoUsageLogRepository(db, wibClock)
	packageRepo := mongoRepo.NewGormPackageRepository(gormDB)
	airlineRepo := mongoRepo.NewGormAirlineRepository(gormDB)

	// Set up provider client
	if cfg.AviationAPIKey == "" {
		log.Warn("No provider API key configured, serving synthetic data only")
	}
	flightProvider := provider.NewAviationstackClient(cfg.AviationBaseURL, cfg.AviationAPIKey, log)

	// Set up the pipeline
	m := metrics.NewMetrics("flighttrack")
	arbiter := flightUsecase.NewPriorityArbiter(packageRepo, wibClock, log)
	fallback := flightUsecase.NewFallbackSynthesizer(wibClock, log)
	normalizer := utils.NewFlightNormalizer()
	flightService := flightUsecase.NewFlightStatusService(
		cacheRepo,
		usageRepo,
		airlineRepo,
		flightProvider,
		arbiter,
		fallback,
		normalizer,
		wibClock,
		log,
		m,
		cfg.CacheTTL,
		cfg.DailyQuota,
	)

	flightHandler := handler.NewFlightStatusHandler(flightService, wibClock, log)

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/flights/status", flightHandler.Lookup)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Flighttrack Service stopped")
}
