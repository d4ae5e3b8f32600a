package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/software11inc/bluedot/config"
	"github.com/software11inc/bluedot/models"
	"github.com/software11inc/bluedot/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string, timeout time.Duration) *FinnhubClient {
	cfg := &config.Config{FinnhubAPIKey: "test-key", FinnhubBaseURL: baseURL}
	batchCfg := config.DefaultBatchConfig()
	batchCfg.RequestTimeout = timeout
	return NewFinnhubClient(cfg, batchCfg, shared.NewGatewayMetrics())
}

func TestGetQuoteSendsSymbolAndToken(t *testing.T) {
	var gotPath, gotSymbol, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSymbol = r.URL.Query().Get("symbol")
		gotToken = r.URL.Query().Get("token")
		json.NewEncoder(w).Encode(models.Quote{Current: 12.5})
	}))
	defer srv.Close()

	quote, err := newTestClient(srv.URL, time.Second).GetQuote(context.Background(), "COIN")
	require.NoError(t, err)

	assert.Equal(t, "/quote", gotPath)
	assert.Equal(t, "COIN", gotSymbol)
	assert.Equal(t, "test-key", gotToken)
	assert.Equal(t, 12.5, quote.Current)
}

func TestGetCompanyNewsComputesLookbackWindow(t *testing.T) {
	var gotFrom, gotTo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFrom = r.URL.Query().Get("from")
		gotTo = r.URL.Query().Get("to")
		json.NewEncoder(w).Encode([]models.CompanyNews{})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).GetCompanyNews(context.Background(), "COIN", 14)
	require.NoError(t, err)

	today := time.Now()
	assert.Equal(t, today.Format("2006-01-02"), gotTo)
	assert.Equal(t, today.AddDate(0, 0, -14).Format("2006-01-02"), gotFrom)
}

func TestGetEarningsCalendarComputesNinetyDayWindow(t *testing.T) {
	var gotFrom, gotTo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFrom = r.URL.Query().Get("from")
		gotTo = r.URL.Query().Get("to")
		json.NewEncoder(w).Encode(models.EarningsCalendar{})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).GetEarningsCalendar(context.Background(), "COIN")
	require.NoError(t, err)

	today := time.Now()
	assert.Equal(t, today.AddDate(0, 0, -90).Format("2006-01-02"), gotFrom)
	assert.Equal(t, today.AddDate(0, 0, 90).Format("2006-01-02"), gotTo)
}

func TestNonSuccessStatusBecomesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).GetQuote(context.Background(), "COIN")
	require.Error(t, err)
	require.True(t, shared.IsUpstreamError(err))

	var ue *shared.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusTooManyRequests, ue.StatusCode)
	assert.Equal(t, "quote", ue.Resource)
	assert.Equal(t, "COIN", ue.Symbol)
}

func TestSlowUpstreamFailsAtDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		json.NewEncoder(w).Encode(models.Quote{})
	}))
	defer srv.Close()

	start := time.Now()
	_, err := newTestClient(srv.URL, 50*time.Millisecond).GetQuote(context.Background(), "COIN")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 250*time.Millisecond, "the deadline bounds a hung call")
	assert.False(t, shared.IsUpstreamError(err), "a timeout is a transport error, not an upstream status")
}

func TestMalformedBodyIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL, time.Second).GetQuote(context.Background(), "COIN")
	require.Error(t, err)
}
