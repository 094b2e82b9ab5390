package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"voice-timesheet/config"
	_ "voice-timesheet/docs" // Swagger docs
	"voice-timesheet/internal/httpserver"
	"voice-timesheet/internal/ledger"
	"voice-timesheet/internal/scratch"
	"voice-timesheet/internal/timesheet/usecase"
	"voice-timesheet/pkg/gemini"
	"voice-timesheet/pkg/log"
)

// @title       Voice Timesheet API
// @description Converts free-form text or spoken audio into structured timesheet entries via Gemini, persisted as CSV.
// @version     1
// @host        localhost:5000
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

	logger.Info(ctx, "Starting Voice Timesheet...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog: %s, Ledger: %s", cfg.Catalog.Path, cfg.Ledger.Path)

	// 3. Gemini LLM client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)
	if cfg.Gemini.Timeout > 0 {
		geminiClient.SetHTTPClient(&http.Client{Timeout: cfg.Gemini.Timeout})
	}

	// 4. Scratch store + startup sweep of leftover temp audio
	scratchStore, err := scratch.New(cfg.Upload.ScratchDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize scratch dir: ", err)
		return
	}
	scratchStore.Sweep(ctx)

	// 5. Timesheet UseCase
	ledgerWriter := ledger.New(cfg.Ledger.Path)
	timesheetUC := usecase.New(logger, geminiClient, ledgerWriter, scratchStore, cfg.Catalog.Path)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TemplateGlob:   "templates/*.html",
		MaxUploadBytes: cfg.Upload.MaxBytes,
		RateLimitPM:    cfg.HTTPServer.RateLimitPerMin,
		TimesheetUC:    timesheetUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
