package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sporax/currency_converter_app/internal/adapters/store/flatfile"
	"github.com/sporax/currency_converter_app/internal/core/services"
	"github.com/sporax/currency_converter_app/internal/handlers"
	"github.com/sporax/currency_converter_app/internal/middleware"
	"github.com/sporax/currency_converter_app/pkg/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create the store files on first run, seeding from bundled templates.
	// Existing stores are never touched.
	if err := flatfile.EnsureStores(cfg.CurrenciesFile, cfg.RatesFile, logger); err != nil {
		logger.Error("Failed to initialize store files", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Store files ready",
		slog.String("currencies", cfg.CurrenciesFile),
		slog.String("rates", cfg.RatesFile),
	)

	currencyRepo := flatfile.NewCurrencyRepository(cfg.CurrenciesFile, logger)
	rateRepo := flatfile.NewRateRepository(cfg.RatesFile, logger)
	container := services.NewServiceContainer(currencyRepo, rateRepo)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLogging(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
