package main

import (
	"context"
	"fmt"
	"os"

	"userapp/internal/app"
	"userapp/internal/config"
	"userapp/internal/logger"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(logger.ForEnv(cfg.Env, cfg.LogLevel, "login"))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	// --- Dependency Injection ---
	ctx := context.Background()
	awsCfg, err := app.LoadAWSConfig(ctx, cfg)
	if err != nil {
		zap.L().Fatal("Failed to load AWS configuration", zap.Error(err))
	}

	authHandler, err := app.NewAuthHandler(ctx, cfg, awsCfg, nil, log)
	if err != nil {
		zap.L().Fatal("Failed to initialize auth handler", zap.Error(err))
	}

	zap.L().Info("Starting login function")
	lambda.Start(authHandler.LambdaLogin())
}
