package models

// Quote is the Finnhub real-time quote payload. Field names follow the
// upstream wire contract and are passed through to the front end unchanged.
type Quote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// CompanyProfile is the Finnhub stock/profile2 payload
type CompanyProfile struct {
	Country              string  `json:"country"`
	Currency             string  `json:"currency"`
	Exchange             string  `json:"exchange"`
	Industry             string  `json:"finnhubIndustry"`
	IPO                  string  `json:"ipo"`
	Logo                 string  `json:"logo"`
	MarketCapitalization float64 `json:"marketCapitalization"` // reported in millions
	Name                 string  `json:"name"`
	Phone                string  `json:"phone"`
	ShareOutstanding     float64 `json:"shareOutstanding"`
	Ticker               string  `json:"ticker"`
	WebURL               string  `json:"weburl"`
}

// BasicFinancials is the Finnhub stock/metric payload. Metric is an open
// bag keyed by metric name (52WeekHigh, beta, peBasicExclExtraTTM, ...);
// only the bag itself is forwarded to the front end.
type BasicFinancials struct {
	Metric     map[string]interface{} `json:"metric"`
	MetricType string                 `json:"metricType"`
	Symbol     string                 `json:"symbol"`
}

// CompanyNews is a single Finnhub company-news item
type CompanyNews struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"` // seconds since epoch
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// EarningsEvent is a single entry in the Finnhub earnings calendar
type EarningsEvent struct {
	Date            string   `json:"date"`
	EPSActual       *float64 `json:"epsActual"`
	EPSEstimate     *float64 `json:"epsEstimate"`
	Hour            string   `json:"hour"`
	Quarter         int      `json:"quarter"`
	RevenueActual   *float64 `json:"revenueActual,omitempty"`
	RevenueEstimate *float64 `json:"revenueEstimate,omitempty"`
	Symbol          string   `json:"symbol"`
	Year            int      `json:"year"`
}

// EarningsCalendar is the Finnhub calendar/earnings payload
type EarningsCalendar struct {
	EarningsCalendar []EarningsEvent `json:"earningsCalendar"`
}
