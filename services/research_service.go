package services

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/software11inc/bluedot/config"
	"github.com/software11inc/bluedot/models"
)

const (
	cacheKeyStockPrices = "stock-prices"
	cacheKeyMarketCaps  = "market-caps"

	// newsLookbackDays is the company-news window for the details view
	newsLookbackDays = 14
	// maxNewsItems bounds the unbounded upstream news list
	maxNewsItems = 5
	// maxMarketCapEntries bounds the treemap to the largest companies
	maxMarketCapEntries = 20
)

// ResearchService orchestrates the three research operations: cache check,
// batched fan-out to the upstream client, reshaping, and write-through.
type ResearchService struct {
	client   *FinnhubClient
	cache    *CacheService
	ttl      *config.CacheTTLConfig
	batchCfg *config.BatchConfig
}

// NewResearchService creates a research service over an injected cache and
// upstream client
func NewResearchService(client *FinnhubClient, cache *CacheService, ttl *config.CacheTTLConfig, batchCfg *config.BatchConfig) *ResearchService {
	return &ResearchService{
		client:   client,
		cache:    cache,
		ttl:      ttl,
		batchCfg: batchCfg,
	}
}

// GetStockPrices returns one row per tracked IPO, in catalog order. A failed
// quote fetch nulls the derived fields of its row; it never drops the row or
// fails the route.
func (rs *ResearchService) GetStockPrices(ctx context.Context) (*models.StockPricesResponse, error) {
	if cached, found := rs.cache.Get(cacheKeyStockPrices); found {
		if resp, ok := cached.(*models.StockPricesResponse); ok {
			return resp, nil
		}
	}

	prices := BatchedMap(ctx, models.FintechIPOs, func(ctx context.Context, company models.TrackedIPO) models.StockPrice {
		row := models.StockPrice{
			Symbol:   company.Symbol,
			Name:     company.Name,
			Sector:   company.Sector,
			IPOPrice: company.IPOPrice,
			IPODate:  company.IPODate,
		}

		quote, err := rs.client.GetQuote(ctx, company.Symbol)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"component": "ResearchService",
				"symbol":    company.Symbol,
			}).WithError(err).Warn("Quote fetch failed, emitting null row")
			return row
		}

		currentPrice := quote.Current
		returnSinceIPO := round1((currentPrice - company.IPOPrice) / company.IPOPrice * 100)
		dailyChange := round2(quote.PercentChange)

		row.CurrentPrice = &currentPrice
		row.ReturnSinceIPO = &returnSinceIPO
		row.DailyChange = &dailyChange
		return row
	}, rs.batchCfg.StockPricesBatchSize, rs.batchCfg.InterBatchDelay)

	resp := &models.StockPricesResponse{
		Data:      prices,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	rs.cache.SetWithTTL(cacheKeyStockPrices, resp, rs.ttl.StockPrices)
	return resp, nil
}

// GetMarketCaps returns the tracked companies that have a positive market
// cap, sorted descending and truncated to the largest entries. Market caps
// are rescaled from millions to billions and rounded per entry before the
// total is computed, so the total always equals what the rows sum to.
func (rs *ResearchService) GetMarketCaps(ctx context.Context) (*models.MarketCapsResponse, error) {
	if cached, found := rs.cache.Get(cacheKeyMarketCaps); found {
		if resp, ok := cached.(*models.MarketCapsResponse); ok {
			return resp, nil
		}
	}

	results := BatchedMap(ctx, models.FintechCompanies, func(ctx context.Context, company models.TrackedCompany) *models.MarketCap {
		profile, err := rs.client.GetCompanyProfile(ctx, company.Symbol)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"component": "ResearchService",
				"symbol":    company.Symbol,
			}).WithError(err).Warn("Profile fetch failed, dropping entry")
			return nil
		}
		if profile.MarketCapitalization == 0 {
			return nil
		}

		name := profile.Name
		if name == "" {
			name = company.Name
		}

		return &models.MarketCap{
			Symbol:    company.Symbol,
			Name:      name,
			Sector:    company.Sector,
			MarketCap: round1(profile.MarketCapitalization / 1000),
			Color:     models.SectorColor(company.Sector),
		}
	}, rs.batchCfg.MarketCapsBatchSize, rs.batchCfg.InterBatchDelay)

	valid := make([]models.MarketCap, 0, len(results))
	for _, r := range results {
		if r != nil && r.MarketCap > 0 {
			valid = append(valid, *r)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].MarketCap > valid[j].MarketCap
	})
	if len(valid) > maxMarketCapEntries {
		valid = valid[:maxMarketCapEntries]
	}

	var total float64
	for _, c := range valid {
		total += c.MarketCap
	}

	resp := &models.MarketCapsResponse{
		Data:           valid,
		TotalMarketCap: round1(total),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	rs.cache.SetWithTTL(cacheKeyMarketCaps, resp, rs.ttl.MarketCaps)
	return resp, nil
}

// GetCompanyDetails fetches the five per-symbol sub-resources concurrently.
// Each sub-fetch is individually fault-tolerant: a failure nulls (or
// empties) its own field only.
func (rs *ResearchService) GetCompanyDetails(ctx context.Context, symbol string) (*models.CompanyDetails, error) {
	cacheKey := "details-" + symbol
	if cached, found := rs.cache.Get(cacheKey); found {
		if details, ok := cached.(*models.CompanyDetails); ok {
			return details, nil
		}
	}

	var (
		quote      *models.Quote
		profile    *models.CompanyProfile
		financials *models.BasicFinancials
		news       []models.CompanyNews
		earnings   *models.EarningsCalendar
	)

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		quote = fetchOrNil(symbol, "quote", func() (*models.Quote, error) {
			return rs.client.GetQuote(ctx, symbol)
		})
	}()
	go func() {
		defer wg.Done()
		profile = fetchOrNil(symbol, "profile", func() (*models.CompanyProfile, error) {
			return rs.client.GetCompanyProfile(ctx, symbol)
		})
	}()
	go func() {
		defer wg.Done()
		financials = fetchOrNil(symbol, "financials", func() (*models.BasicFinancials, error) {
			return rs.client.GetBasicFinancials(ctx, symbol)
		})
	}()
	go func() {
		defer wg.Done()
		fetched, err := rs.client.GetCompanyNews(ctx, symbol, newsLookbackDays)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"component": "ResearchService",
				"symbol":    symbol,
				"resource":  "news",
			}).WithError(err).Warn("Sub-fetch failed, emitting empty list")
			return
		}
		news = fetched
	}()
	go func() {
		defer wg.Done()
		earnings = fetchOrNil(symbol, "earnings", func() (*models.EarningsCalendar, error) {
			return rs.client.GetEarningsCalendar(ctx, symbol)
		})
	}()
	wg.Wait()

	details := &models.CompanyDetails{
		Symbol:   symbol,
		Quote:    quote,
		Profile:  profile,
		News:     truncateNews(news),
		Earnings: []models.EarningsEvent{},
	}
	if financials != nil {
		details.Financials = financials.Metric
	}
	if earnings != nil && earnings.EarningsCalendar != nil {
		details.Earnings = earnings.EarningsCalendar
	}

	rs.cache.SetWithTTL(cacheKey, details, rs.ttl.CompanyDetails)
	return details, nil
}

// fetchOrNil converts one sub-fetch failure into a nil field, keeping the
// failure inside its own fault boundary.
func fetchOrNil[T any](symbol, resource string, fetch func() (*T, error)) *T {
	value, err := fetch()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"component": "ResearchService",
			"symbol":    symbol,
			"resource":  resource,
		}).WithError(err).Warn("Sub-fetch failed, emitting null field")
		return nil
	}
	return value
}

func truncateNews(news []models.CompanyNews) []models.CompanyNews {
	if news == nil {
		return []models.CompanyNews{}
	}
	if len(news) > maxNewsItems {
		return news[:maxNewsItems]
	}
	return news
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
