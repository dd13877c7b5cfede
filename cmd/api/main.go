package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"autonomous-task-extraction/config"
	_ "autonomous-task-extraction/docs" // Swagger docs
	extractionHTTP "autonomous-task-extraction/internal/extraction/delivery/http"
	tgDelivery "autonomous-task-extraction/internal/extraction/delivery/telegram"
	"autonomous-task-extraction/internal/extraction/usecase"
	"autonomous-task-extraction/internal/httpserver"
	"autonomous-task-extraction/pkg/datemath"
	"autonomous-task-extraction/pkg/log"
	"autonomous-task-extraction/pkg/telegram"
)

// @title       Autonomous Task Extraction API
// @description Rule-based extraction of actionable tasks from voice transcripts and chat messages.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Autonomous Task Extraction...")
	logger.Infof(ctx, "Environment: %s, timezone: %s", cfg.Environment.Name, cfg.Extraction.Timezone)

	// 3. Extraction domain
	dates, err := datemath.NewParser(cfg.Extraction.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Extraction.Timezone, err)
		os.Exit(1)
	}
	extractionUC := usecase.New(logger, dates, usecase.Options{
		ParallelMatchers: cfg.Extraction.ParallelMatchers,
	})

	// 4. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, extractionUC, bot, tgDelivery.Config{
			MinConfidence: cfg.Telegram.MinConfidence,
			MaxResults:    cfg.Extraction.MaxResults,
			Location:      dates.Location(),
		})
		registerWebhook(ctx, logger, bot, cfg.Telegram.WebhookURL)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		ExtractionUC: extractionUC,
		ExtractionConfig: extractionHTTP.Config{
			MinConfidence: cfg.Extraction.MinConfidence,
			MaxInputChars: cfg.Extraction.MaxInputChars,
			MaxResults:    cfg.Extraction.MaxResults,
			Location:      dates.Location(),
		},
		TelegramHandler: telegramHandler,
		RateLimit:       cfg.RateLimit,
		Metrics:         cfg.Metrics,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
