//go:build ignore

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/software11inc/bluedot/config"
	"github.com/software11inc/bluedot/services"
	"github.com/software11inc/bluedot/shared"
)

func main() {
	fmt.Printf("🏥 Market Data Gateway Health Check - %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println(strings.Repeat("=", 50))

	healthScore := 0
	totalTests := 3

	cfg := config.LoadConfig()
	batchCfg := config.DefaultBatchConfig()
	metrics := shared.NewGatewayMetrics()
	client := services.NewFinnhubClient(cfg, batchCfg, metrics)
	ctx := context.Background()

	// Test 1: API key configured
	fmt.Print("🔑 API key: ")
	if cfg.FinnhubAPIKey == "" {
		fmt.Println("❌ FAILED (FINNHUB_API_KEY not set)")
	} else {
		fmt.Println("✅ OK")
		healthScore++
	}

	// Test 2: Quote endpoint
	fmt.Print("📡 Finnhub quote: ")
	if quote, err := client.GetQuote(ctx, "COIN"); err != nil {
		fmt.Printf("❌ FAILED (%v)\n", err)
	} else {
		fmt.Printf("✅ OK (COIN at %.2f)\n", quote.Current)
		healthScore++
	}

	// Test 3: Profile endpoint
	fmt.Print("🏢 Finnhub profile: ")
	if profile, err := client.GetCompanyProfile(ctx, "COIN"); err != nil {
		fmt.Printf("❌ FAILED (%v)\n", err)
	} else {
		fmt.Printf("✅ OK (%s, market cap %.0fM)\n", profile.Name, profile.MarketCapitalization)
		healthScore++
	}

	// Overall health
	fmt.Println(strings.Repeat("-", 50))
	healthPercent := float64(healthScore) / float64(totalTests) * 100

	if healthScore == totalTests {
		fmt.Printf("🎉 SYSTEM HEALTHY: %d/%d tests passed (%.0f%%)\n", healthScore, totalTests, healthPercent)
	} else if healthScore >= totalTests/2 {
		fmt.Printf("⚠️  SYSTEM DEGRADED: %d/%d tests passed (%.0f%%)\n", healthScore, totalTests, healthPercent)
	} else {
		fmt.Printf("❌ SYSTEM UNHEALTHY: %d/%d tests passed (%.0f%%)\n", healthScore, totalTests, healthPercent)
	}

	fmt.Printf("⏰ Check completed at: %s\n", time.Now().Format("15:04:05"))
}
