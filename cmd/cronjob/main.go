package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

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
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'expire-reservations', 'maintenance-report', 'all-nightly')")
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
	logger.Info("Starting AlugaCar cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Repositories and Services
	store := postgres.NewStore(db)
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	jobRunner := jobs.NewJobRunner(db, store, emailSvc, cfg)

	// Run a single job and exit if requested
	if *runOnce != "" {
		switch *runOnce {
		case "expire-reservations":
			jobRunner.ExpireStaleReservations()
		case "maintenance-report":
			jobRunner.SendMaintenanceDueReport()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		logger.Info("Job run complete", "job", *runOnce)
		return
	}

	// Otherwise run the scheduler until signalled
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cronScheduler.Stop()
	logger.Info("Cronjob runner stopped")
}
