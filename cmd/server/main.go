package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "alugacar-backend/internal/api/http"
	"alugacar-backend/internal/cache"
	"alugacar-backend/internal/config"
	"alugacar-backend/internal/jobs"
	"alugacar-backend/internal/logger"
	"alugacar-backend/internal/repository/postgres"
	"alugacar-backend/internal/scheduler"
	"alugacar-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using system environment: %v", err)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AlugaCar backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Redis
	var cacheClient cache.Client
	if cfg.Redis.Addr != "" {
		cacheClient, err = cache.NewRedisClient(cfg.Redis.Addr)
		if err != nil {
			logger.Warn("Redis unavailable, catalog cache disabled", "addr", cfg.Redis.Addr, "error", err)
			cacheClient = nil
		} else {
			logger.Info("Redis connection established", "addr", cfg.Redis.Addr)
		}
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	locks := service.NewCategoryLocks()
	pricing := service.NewPricingEngine(store.CategoryRepository, store.ReservationRepository, store.RentalRepository)
	catalogSvc := service.NewCatalogService(store.CategoryRepository, store.VehicleRepository, cacheClient)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.CategoryRepository,
		store.CustomerRepository,
		pricing,
		locks,
	)
	pickupSvc := service.NewPickupService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.RentalRepository,
		store,
		locks,
	)
	returnSvc := service.NewReturnService(
		store.RentalRepository,
		store.ReservationRepository,
		store.VehicleRepository,
		store,
		locks,
	)
	maintenanceSvc := service.NewMaintenanceService(store.VehicleRepository)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(db, store, emailSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Initialize HTTP API
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Catalog:      catalogSvc,
		Reservations: reservationSvc,
		Pickups:      pickupSvc,
		Returns:      returnSvc,
		Maintenance:  maintenanceSvc,
		Customers:    customerSvc,
		Pricing:      pricing,
		Email:        emailSvc,
		ManagerEmail: cfg.Email.ManagerEmail,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Shutdown complete")
}
