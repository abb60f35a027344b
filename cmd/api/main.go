package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"botschema/api/jsonschema"
	"botschema/config"
	_ "botschema/docs" // Swagger docs
	"botschema/internal/httpserver"
	"botschema/internal/middleware"
	"botschema/pkg/log"
	"botschema/pkg/telegram"
)

// @title       Telegram Bot Schema API
// @description Decode, encode and inspect Telegram Bot API wire documents.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting botschema...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Mapping layer
	policy, err := telegram.ParseEnumPolicy(cfg.Schema.EnumPolicy)
	if err != nil {
		logger.Error(ctx, "Invalid enum policy: ", err)
		return
	}

	schemas, err := jsonschema.Load()
	if err != nil {
		logger.Error(ctx, "Failed to load wire schemas: ", err)
		return
	}
	logger.Infof(ctx, "Loaded wire schemas: %v", schemas.IDs())

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		EnumPolicy:  policy,
		Schemas:     schemas,
		RateLimit: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
			CacheSize:       cfg.RateLimit.CacheSize,
			TTL:             cfg.RateLimit.TTL,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
