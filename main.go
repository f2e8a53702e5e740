package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/username/aktienportfolio/backend/src/config"
	"github.com/username/aktienportfolio/backend/src/database"
	"github.com/username/aktienportfolio/backend/src/handlers"
	"github.com/username/aktienportfolio/backend/src/logger"
	"github.com/username/aktienportfolio/backend/src/services"
)

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Aktienportfolio backend server starting...", "debug", config.Cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	db, err := database.InitDB(config.Cfg.DatabasePath)
	if err != nil {
		logger.L.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	schemaSQL, seedSQL, err := database.LoadScripts(config.Cfg.SchemaPath, config.Cfg.SeedDataPath)
	if err != nil {
		logger.L.Error("Failed to load SQL scripts", "error", err)
		os.Exit(1)
	}
	seeded, err := database.Initialize(ctx, db, schemaSQL, seedSQL)
	if err != nil {
		logger.L.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	if info, err := os.Stat(config.Cfg.DatabasePath); err == nil {
		logger.L.Info("Database initialized successfully.", "seeded", seeded, "size", humanize.Bytes(uint64(info.Size())))
	}

	logger.L.Info("Initializing services and handlers...")
	reportService := services.NewReportService(db, services.NewQueryExecutor(db))
	reportHandler := handlers.NewReportHandler(reportService)

	router := handlers.NewRouter(reportHandler, handlers.RouterConfig{
		AllowedOrigins: config.Cfg.AllowedOrigins,
		RateLimiter:    handlers.NewRateLimiter(config.Cfg.RateLimitInterval, config.Cfg.RateLimitBurst),
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  config.Cfg.ReadTimeout,
		WriteTimeout: config.Cfg.WriteTimeout,
		IdleTimeout:  config.Cfg.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		logger.L.Info("Shutdown signal received, draining connections...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.L.Error("Graceful shutdown failed", "error", err)
		}
	}()

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	}
	logger.L.Info("Server stopped gracefully.")
}
