package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/digital-menu-api/docs"
	"github.com/kingrain94/digital-menu-api/internal/api"
	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/metrics"
	"github.com/kingrain94/digital-menu-api/internal/middleware"
	"github.com/kingrain94/digital-menu-api/internal/repository"
	"github.com/kingrain94/digital-menu-api/internal/repository/composite"
	"github.com/kingrain94/digital-menu-api/internal/repository/memory"
	"github.com/kingrain94/digital-menu-api/internal/repository/postgres"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/internal/service/pubsub"
	"github.com/kingrain94/digital-menu-api/internal/service/queue"
	"github.com/kingrain94/digital-menu-api/internal/service/session"
	"github.com/kingrain94/digital-menu-api/internal/service/storage"
	"github.com/kingrain94/digital-menu-api/internal/tenancy"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
	"github.com/kingrain94/digital-menu-api/pkg/password"
)

// @title           Digital Menu API
// @version         1.0
// @description     Multi-tenant digital menu platform.

// @host      localhost:10000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
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
	if cfg.JWTSecretKey == "" {
		appLogger.Fatal("JWT_SECRET_KEY is required", nil)
	}

	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(cfg.MetricsNamespace, registry)

	// Optional collaborators stay nil interfaces when their backend is off.
	var (
		repo        repository.Repository
		search      repository.SearchRepository
		images      service.ImageHost
		indexer     service.ProductIndexer
		exportQueue service.ExportQueue
		events      service.EventPublisher
		subscriber  api.MenuEventSubscriber
		sessions    service.SessionStore
		redisClient *redis.Client
	)

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		appLogger.Warn("Using in-memory storage; data is lost on restart")
		repo = memory.NewStore()

	case config.StorageDriverPostgres:
		dbConnections, err := config.NewDatabaseConnections(cfg.AppEnv)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", err)
		}
		defer dbConnections.Close()
		appLogger.Info("Database connections established - writer and reader connected")

		if cfg.DBAutoMigrate {
			if err := postgres.Migrate(dbConnections.Writer); err != nil {
				appLogger.Fatal("Failed to migrate database", err)
			}
		}

		// Initialize OpenSearch
		osConfig := config.DefaultOpenSearchConfig()
		osClient, err := osConfig.GetClient()
		if err != nil {
			appLogger.Fatal("Failed to connect to OpenSearch", err)
		}
		compositeRepo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)
		repo, search = compositeRepo, compositeRepo.Search()

		// Initialize S3
		s3Config := config.DefaultS3Config()
		s3Client, err := s3Config.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to connect to S3", err)
		}
		images = storage.NewS3ImageHost(s3Client, s3Config, storage.ImageHostOptions{
			Timeout:  cfg.ImageUploadTimeout,
			Attempts: uint(cfg.ImageUploadAttempts),
			MaxBytes: cfg.ImageMaxBytes,
		}, appMetrics, appLogger)

		// Initialize SQS
		sqsConfig := config.DefaultSQSConfig()
		sqsClient, err := sqsConfig.GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to connect to SQS", err)
		}
		sqsService := queue.NewSQSService(sqsClient, sqsConfig)
		indexer, exportQueue = sqsService, sqsService

	default:
		appLogger.Fatal(fmt.Sprintf("Unknown STORAGE_DRIVER %q", cfg.StorageDriver), nil)
	}

	switch cfg.SessionStore {
	case config.SessionStoreMemory:
		sessions = session.NewMemoryStore()

	case config.SessionStoreRedis:
		redisClient, err = config.DefaultRedisConfig().GetClient(ctx)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", err)
		}
		defer redisClient.Close()
		sessions = session.NewRedisStore(redisClient)

		redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)
		events, subscriber = redisPubSub, redisPubSub

	default:
		appLogger.Fatal(fmt.Sprintf("Unknown SESSION_STORE %q", cfg.SessionStore), nil)
	}

	// Initialize services
	tenantService := service.NewTenantService(repo, cfg.ReservedSubdomains, events, appLogger)
	userService := service.NewUserService(repo, password.NewBcryptHasher(0), cfg.AllowRegistration)
	authService := service.NewAuthService(userService, sessions, cfg.JWTSecretKey, cfg.SessionTTL)
	catalogService := service.NewCatalogService(repo, images, events, indexer, appLogger)
	publicService := service.NewPublicService(repo, search)
	exportService := service.NewExportService(repo, exportQueue)

	resolver := tenancy.NewResolver(tenantService, tenancy.Options{
		Production:       cfg.IsProduction(),
		Development:      cfg.IsDevelopment(),
		DevHostSuffixes:  cfg.DevHostSuffixes,
		ReservedLabels:   cfg.ReservedSubdomains,
		BaseDomain:       cfg.BaseDomain,
		DefaultSubdomain: cfg.DevDefaultSubdomain,
	})

	base := api.NewBaseHandler(cfg.IsProduction(), appLogger)

	var stream *api.MenuStreamHandler
	if subscriber != nil {
		stream = api.NewMenuStreamHandler(base, publicService, subscriber, appLogger)
	}

	// Initialize server
	server := api.NewServer(api.ServerDeps{
		Base:            base,
		Users:           userService,
		Auth:            authService,
		Tenants:         tenantService,
		Catalog:         catalogService,
		Public:          publicService,
		Exports:         exportService,
		Stream:          stream,
		AuthMW:          middleware.NewAuthMiddleware(authService, appMetrics, appLogger),
		TenantMW:        middleware.NewTenantMiddleware(resolver, appMetrics, appLogger),
		RateLimit:       middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger),
		Validation:      middleware.NewValidationMiddleware(appLogger),
		GlobalRateLimit: cfg.GlobalRateLimit,
	})
	server.StartMenuStream()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(appLogger), middleware.Metrics(appMetrics))

	// Swagger documentation endpoint
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Setup API routes
	apiGroup := router.Group("/api")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		appLogger.Infof("Listening on %s (env=%s, storage=%s)", srv.Addr, cfg.AppEnv, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	server.StopMenuStream()

	// Shutdown the HTTP server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	_ = appLogger.Sync()
}
