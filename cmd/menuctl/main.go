package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))
	defer func() { _ = appLogger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	factory := newCommandFactory(cfg, appLogger)
	defer factory.Close()

	if err := factory.NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
