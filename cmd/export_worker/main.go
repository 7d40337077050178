package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/metrics"
	"github.com/kingrain94/digital-menu-api/internal/repository/postgres"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/internal/service/queue"
	"github.com/kingrain94/digital-menu-api/internal/worker"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}
	ctx := context.Background()

	dbConnections, err := config.NewDatabaseConnections(cfg.AppEnv)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established for export worker")

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(ctx)
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	exportService := service.NewExportService(postgres.NewPostgresRepository(dbConnections), nil)

	exportWorker := worker.NewExportWorker(
		sqsService,
		sqsService.ExportQueueURL(),
		exportService,
		s3Client,
		s3Config.ExportBucket,
		metrics.New(cfg.MetricsNamespace, prometheus.DefaultRegisterer),
		appLogger,
		1,
		5*time.Second,
	)

	exportWorker.Start()
	appLogger.Info("Export worker started")

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	exportWorker.Stop()
	appLogger.Info("Worker stopped")
	_ = appLogger.Sync()
}
