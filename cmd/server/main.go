package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"hello-samples/internal/config"
	"hello-samples/internal/logging"
	"hello-samples/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log, nil)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, server.NewContainer(cfg, logger)); err != nil {
		logger.WithError(err).Fatal("Server stopped")
	}
}
