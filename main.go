package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/software11inc/bluedot/config"
	"github.com/software11inc/bluedot/handlers"
	"github.com/software11inc/bluedot/jobs"
	"github.com/software11inc/bluedot/services"
	"github.com/software11inc/bluedot/shared"
)

func main() {
	// Load config
	cfg := config.LoadConfig()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	if cfg.FinnhubAPIKey == "" {
		logrus.Warn("FINNHUB_API_KEY not configured; research routes will return 500 until it is set")
	}

	// Cache TTLs and batch sizing
	ttlConfig := config.DefaultCacheTTLConfig()
	if override := cfg.GetCacheTTLOverride(); override > 0 {
		ttlConfig.StockPrices = override
		ttlConfig.MarketCaps = override
		ttlConfig.CompanyDetails = override
	}
	batchConfig := config.DefaultBatchConfig()

	// Initialize services; the cache is constructed once here and injected
	metrics := shared.NewGatewayMetrics()
	cacheService := services.NewCacheService(metrics)
	finnhubClient := services.NewFinnhubClient(cfg, batchConfig, metrics)
	researchService := services.NewResearchService(finnhubClient, cacheService, ttlConfig, batchConfig)

	logrus.Info("Market data gateway services initialized:")
	logrus.Infof("  - Finnhub client (request timeout: %v)", batchConfig.RequestTimeout)
	logrus.Infof("  - Batched upstream fan-out (stock prices: %d/batch, market caps: %d/batch, delay: %v)",
		batchConfig.StockPricesBatchSize, batchConfig.MarketCapsBatchSize, batchConfig.InterBatchDelay)
	logrus.Infof("  - Response cache (stock prices: %v, market caps: %v, company details: %v)",
		ttlConfig.StockPrices, ttlConfig.MarketCaps, ttlConfig.CompanyDetails)

	// Initialize jobs
	cleanupJob := jobs.NewCacheCleanupJob(cacheService)
	warmupJob := jobs.NewWarmupJob(researchService)

	// Initialize handlers
	researchHandler := handlers.NewResearchHandler(researchService)

	// Warmup cache on startup, then keep it warm ahead of the page's polling
	// interval; sweep expired entries periodically
	if cfg.FinnhubAPIKey != "" {
		go func() {
			time.Sleep(2 * time.Second)
			warmupJob.Run(context.Background())

			warmTicker := time.NewTicker(ttlConfig.StockPrices)
			cleanupTicker := time.NewTicker(30 * time.Minute)
			for {
				select {
				case <-warmTicker.C:
					warmupJob.Run(context.Background())
				case <-cleanupTicker.C:
					cleanupJob.Run()
					metrics.LogSummary()
				}
			}
		}()
	}

	// Setup Fiber
	app := fiber.New()
	handlers.SetupRoutes(app, researchHandler, cfg, metrics)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
