package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/software11inc/bluedot/config"
	"github.com/software11inc/bluedot/models"
	"github.com/software11inc/bluedot/shared"
)

// FinnhubClient translates one logical request (symbol + data kind) into one
// upstream HTTP call against the Finnhub REST API. Every call carries an
// explicit deadline so a hung upstream request surfaces as an ordinary
// per-symbol failure instead of stalling its whole batch.
type FinnhubClient struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	requestTimeout time.Duration
	metrics        *shared.GatewayMetrics
}

// NewFinnhubClient creates a Finnhub client from configuration. The HTTP
// client comes from the shared factory so connections to the single
// upstream host are pooled.
func NewFinnhubClient(cfg *config.Config, batchCfg *config.BatchConfig, metrics *shared.GatewayMetrics) *FinnhubClient {
	factory := shared.NewHTTPClientFactory(batchCfg.RequestTimeout)

	return &FinnhubClient{
		baseURL:        cfg.FinnhubBaseURL,
		apiKey:         cfg.FinnhubAPIKey,
		httpClient:     factory.CreateOptimizedHTTPClient(batchCfg.RequestTimeout),
		requestTimeout: batchCfg.RequestTimeout,
		metrics:        metrics,
	}
}

// GetQuote fetches the real-time quote for a symbol
func (fc *FinnhubClient) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	var quote models.Quote
	params := url.Values{"symbol": {symbol}}
	if err := fc.fetchJSON(ctx, "quote", "quote", symbol, params, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetCompanyProfile fetches the company profile for a symbol
func (fc *FinnhubClient) GetCompanyProfile(ctx context.Context, symbol string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	params := url.Values{"symbol": {symbol}}
	if err := fc.fetchJSON(ctx, "stock/profile2", "profile", symbol, params, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetBasicFinancials fetches the full basic-financials metric bag for a symbol
func (fc *FinnhubClient) GetBasicFinancials(ctx context.Context, symbol string) (*models.BasicFinancials, error) {
	var financials models.BasicFinancials
	params := url.Values{"symbol": {symbol}, "metric": {"all"}}
	if err := fc.fetchJSON(ctx, "stock/metric", "financials", symbol, params, &financials); err != nil {
		return nil, err
	}
	return &financials, nil
}

// GetCompanyNews fetches company news for the window [today - daysBack, today].
// The window is computed at call time.
func (fc *FinnhubClient) GetCompanyNews(ctx context.Context, symbol string, daysBack int) ([]models.CompanyNews, error) {
	today := time.Now()
	from := today.AddDate(0, 0, -daysBack)

	var news []models.CompanyNews
	params := url.Values{
		"symbol": {symbol},
		"from":   {from.Format("2006-01-02")},
		"to":     {today.Format("2006-01-02")},
	}
	if err := fc.fetchJSON(ctx, "company-news", "news", symbol, params, &news); err != nil {
		return nil, err
	}
	return news, nil
}

// GetEarningsCalendar fetches earnings events in a fixed +-90 day window
// around now, computed at call time.
func (fc *FinnhubClient) GetEarningsCalendar(ctx context.Context, symbol string) (*models.EarningsCalendar, error) {
	today := time.Now()
	from := today.AddDate(0, 0, -90)
	to := today.AddDate(0, 0, 90)

	var calendar models.EarningsCalendar
	params := url.Values{
		"symbol": {symbol},
		"from":   {from.Format("2006-01-02")},
		"to":     {to.Format("2006-01-02")},
	}
	if err := fc.fetchJSON(ctx, "calendar/earnings", "earnings", symbol, params, &calendar); err != nil {
		return nil, err
	}
	return &calendar, nil
}

// fetchJSON performs one GET against the named Finnhub resource and decodes
// the JSON body into out. Non-2xx responses become UpstreamError.
func (fc *FinnhubClient) fetchJSON(ctx context.Context, path, resource, symbol string, params url.Values, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, fc.requestTimeout)
	defer cancel()

	params.Set("token", fc.apiKey)
	requestURL := fmt.Sprintf("%s/%s?%s", fc.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("building %s request for %s: %w", resource, symbol, err)
	}

	resp, err := fc.httpClient.Do(req)
	if err != nil {
		fc.metrics.RecordUpstreamCall(false)
		return fmt.Errorf("fetching %s for %s: %w", resource, symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fc.metrics.RecordUpstreamCall(false)
		logrus.WithFields(logrus.Fields{
			"component":   "FinnhubClient",
			"resource":    resource,
			"symbol":      symbol,
			"status_code": resp.StatusCode,
		}).Warn("Upstream returned non-success status")
		return shared.NewUpstreamError(resource, symbol, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fc.metrics.RecordUpstreamCall(false)
		return fmt.Errorf("decoding %s response for %s: %w", resource, symbol, err)
	}

	fc.metrics.RecordUpstreamCall(true)
	return nil
}
