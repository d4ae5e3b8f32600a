package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/software11inc/bluedot/config"
	"github.com/software11inc/bluedot/models"
	"github.com/software11inc/bluedot/services"
	"github.com/software11inc/bluedot/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstreamRecorder is a minimal fake Finnhub that answers every resource and
// remembers the symbols it was asked for.
type upstreamRecorder struct {
	mu      sync.Mutex
	symbols []string
}

func (u *upstreamRecorder) seen() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.symbols...)
}

func (u *upstreamRecorder) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.symbols = append(u.symbols, r.URL.Query().Get("symbol"))
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/quote":
			json.NewEncoder(w).Encode(models.Quote{Current: 20, PercentChange: 1.5})
		case "/stock/profile2":
			json.NewEncoder(w).Encode(map[string]interface{}{"name": "Test Co", "marketCapitalization": 1500.0})
		case "/stock/metric":
			json.NewEncoder(w).Encode(map[string]interface{}{"metric": map[string]interface{}{"beta": 1.0}})
		case "/company-news":
			json.NewEncoder(w).Encode([]models.CompanyNews{})
		case "/calendar/earnings":
			json.NewEncoder(w).Encode(models.EarningsCalendar{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestApp(apiKey, upstreamURL string) *fiber.App {
	cfg := &config.Config{FinnhubAPIKey: apiKey, FinnhubBaseURL: upstreamURL}
	batchCfg := &config.BatchConfig{
		StockPricesBatchSize: 10,
		MarketCapsBatchSize:  3,
		InterBatchDelay:      time.Millisecond,
		RequestTimeout:       2 * time.Second,
	}
	metrics := shared.NewGatewayMetrics()
	cache := services.NewCacheService(metrics)
	client := services.NewFinnhubClient(cfg, batchCfg, metrics)
	service := services.NewResearchService(client, cache, config.DefaultCacheTTLConfig(), batchCfg)

	app := fiber.New()
	SetupRoutes(app, NewResearchHandler(service), cfg, metrics)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp("test-key", "http://localhost:0")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestMissingAPIKeyReturns500OnEveryResearchRoute(t *testing.T) {
	app := newTestApp("", "http://localhost:0")

	for _, path := range []string{"/stock-prices", "/fintech-marketcaps", "/company-details/COIN"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)

		body := decodeBody(t, resp)
		assert.Equal(t, "API key not configured", body["error"], path)
	}
}

func TestMissingSymbolReturns400(t *testing.T) {
	app := newTestApp("test-key", "http://localhost:0")

	for _, path := range []string{"/company-details", "/company-details/"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)

		body := decodeBody(t, resp)
		assert.Equal(t, "Symbol required", body["error"], path)
	}
}

func TestUnknownRouteReturns404ListingKnownRoutes(t *testing.T) {
	app := newTestApp("test-key", "http://localhost:0")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Not found", body["error"])

	routes, ok := body["routes"].([]interface{})
	require.True(t, ok)
	assert.Len(t, routes, 3)
	assert.Contains(t, routes, "/stock-prices")
	assert.Contains(t, routes, "/fintech-marketcaps")
	assert.Contains(t, routes, "/company-details/:symbol")
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	app := newTestApp("test-key", "http://localhost:0")

	req := httptest.NewRequest(http.MethodOptions, "/stock-prices", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "GET")
}

func TestStockPricesEndpointReturnsEnvelope(t *testing.T) {
	upstream := &upstreamRecorder{}
	srv := upstream.server()
	defer srv.Close()

	app := newTestApp("test-key", srv.URL)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/stock-prices", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	body := decodeBody(t, resp)
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, len(models.FintechIPOs))
	assert.NotEmpty(t, body["timestamp"])
}

func TestCompanyDetailsUppercasesSymbol(t *testing.T) {
	upstream := &upstreamRecorder{}
	srv := upstream.server()
	defer srv.Close()

	app := newTestApp("test-key", srv.URL)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/company-details/coin", nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "COIN", body["symbol"])

	for _, symbol := range upstream.seen() {
		assert.Equal(t, "COIN", symbol)
	}
}
