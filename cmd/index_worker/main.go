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
	"github.com/kingrain94/digital-menu-api/internal/repository/opensearch"
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

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	searchRepo := opensearch.NewRepository(osClient, osConfig)

	appLogger.Info("OpenSearch connection established for index worker")

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	appLogger.Info("SQS connection established for index worker")

	indexWorker := worker.NewIndexWorker(
		sqsService,
		sqsService.IndexQueueURL(),
		searchRepo,
		metrics.New(cfg.MetricsNamespace, prometheus.DefaultRegisterer),
		appLogger,
		1,             // worker goroutines
		5*time.Second, // Poll every 5 seconds
	)

	indexWorker.Start()
	appLogger.Info("Index worker started")

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	indexWorker.Stop()
	appLogger.Info("Worker stopped")
	_ = appLogger.Sync()
}
