package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort     string
	FinnhubAPIKey  string
	FinnhubBaseURL string
	LogLevel       string
	CacheTTLSecs   string
}

// CacheTTLConfig holds per-route cache durations. Market caps change slowly
// and cost the most upstream calls to recompute, so they keep a longer TTL.
type CacheTTLConfig struct {
	StockPrices    time.Duration `json:"stock_prices"`
	MarketCaps     time.Duration `json:"market_caps"`
	CompanyDetails time.Duration `json:"company_details"`
}

// DefaultCacheTTLConfig returns the default per-route cache durations
func DefaultCacheTTLConfig() *CacheTTLConfig {
	return &CacheTTLConfig{
		StockPrices:    2 * time.Minute,
		MarketCaps:     10 * time.Minute,
		CompanyDetails: 2 * time.Minute,
	}
}

// BatchConfig holds upstream batching and timeout configuration. Finnhub
// enforces a 60 calls/minute budget; the batch sizes and inter-batch delay
// keep each route's fan-out under that ceiling with margin.
type BatchConfig struct {
	StockPricesBatchSize int           `json:"stock_prices_batch_size"`
	MarketCapsBatchSize  int           `json:"market_caps_batch_size"`
	InterBatchDelay      time.Duration `json:"inter_batch_delay"`
	RequestTimeout       time.Duration `json:"request_timeout"`
}

// DefaultBatchConfig returns default batching configuration
func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{
		StockPricesBatchSize: 10,                      // one upstream call per symbol
		MarketCapsBatchSize:  3,                       // keep headroom under the per-minute ceiling
		InterBatchDelay:      1100 * time.Millisecond, // 60 calls/min = ~1 call/sec
		RequestTimeout:       10 * time.Second,
	}
}

// GetCacheTTLOverride returns the CACHE_TTL_SECONDS override, or zero when
// the per-route defaults should be used.
func (c *Config) GetCacheTTLOverride() time.Duration {
	if c.CacheTTLSecs == "" {
		return 0
	}

	secs, err := strconv.Atoi(c.CacheTTLSecs)
	if err != nil || secs <= 0 {
		logrus.Warnf("Invalid CACHE_TTL_SECONDS value: %s, using per-route defaults", c.CacheTTLSecs)
		return 0
	}

	return time.Duration(secs) * time.Second
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, using system environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		FinnhubAPIKey:  getEnv("FINNHUB_API_KEY", ""),
		FinnhubBaseURL: getEnv("FINNHUB_BASE_URL", "https://finnhub.io/api/v1"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CacheTTLSecs:   getEnv("CACHE_TTL_SECONDS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
