package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"personal-task-assistant/config"
	_ "personal-task-assistant/docs" // Swagger docs
	"personal-task-assistant/internal/assistant/repository/sqlite"
	"personal-task-assistant/internal/assistant/usecase"
	"personal-task-assistant/internal/classifier"
	"personal-task-assistant/internal/httpserver"
	"personal-task-assistant/internal/model"
	"personal-task-assistant/pkg/gcalendar"
	"personal-task-assistant/pkg/gemini"
	"personal-task-assistant/pkg/log"
)

// @title       Personal Task Assistant API
// @description Chat-driven task and calendar assistant with Gemini LLM classification and Google Calendar export.
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

	logger.Info(ctx, "Starting Personal Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. State repository
	store, err := sqlite.New(cfg.Assistant.DBPath, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open state store: %v", err)
		return
	}
	defer store.Close()

	// 4. Intent classifier
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY not set: classification degrades to a clarification reply")
	}
	cls := classifier.New(geminiClient, logger, cfg.Assistant.ClassifierCacheTTL)

	// 5. Assistant use case
	loc, err := time.LoadLocation(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		loc = time.UTC
	}

	dialCalendar := func(ctx context.Context, account model.GoogleAccount) (usecase.CalendarClient, error) {
		return gcalendar.NewClientFromToken(ctx, account.AccessToken, account.ExpiresAt)
	}

	assistantUC, err := usecase.New(logger, cls, store, dialCalendar, loc, cfg.Export.RateLimitPerMin)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize assistant: %v", err)
		return
	}

	// 6. Expired-account sweep
	sweeper := cron.New()
	_, err = sweeper.AddFunc(cfg.Assistant.AccountSweepSpec, func() {
		sweepCtx := context.Background()
		if pruned, sweepErr := assistantUC.PruneExpiredAccounts(sweepCtx); sweepErr != nil {
			logger.Warnf(sweepCtx, "Account sweep failed: %v", sweepErr)
		} else if pruned > 0 {
			logger.Infof(sweepCtx, "Account sweep pruned %d account(s)", pruned)
		}
	})
	if err != nil {
		logger.Errorf(ctx, "Invalid account sweep spec %q: %v", cfg.Assistant.AccountSweepSpec, err)
		return
	}
	sweeper.Start()
	defer sweeper.Stop()

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Assistant:   assistantUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
