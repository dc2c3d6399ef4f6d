package main

import (
	"log"

	awslambda "github.com/aws/aws-lambda-go/lambda"

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

	container := server.NewContainer(cfg, logger.WithFields(config.GetServerlessConfig().Fields()))

	awslambda.Start(container.CheckIPHandler.Handle)
}
