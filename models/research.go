package models

// StockPrice is one row of the /stock-prices response: a tracked IPO with
// its return since listing. The three derived fields are null (not omitted)
// when the quote fetch for the symbol failed, so every catalog entry always
// appears in the output.
type StockPrice struct {
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name"`
	Sector         string   `json:"sector"`
	IPOPrice       float64  `json:"ipoPrice"`
	IPODate        string   `json:"ipoDate"`
	CurrentPrice   *float64 `json:"currentPrice"`
	ReturnSinceIPO *float64 `json:"returnSinceIPO"`
	DailyChange    *float64 `json:"dailyChange"`
}

// MarketCap is one row of the /fintech-marketcaps response. MarketCap is in
// billions, rounded to one decimal; entries without a positive market cap
// are dropped before the response is built.
type MarketCap struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Sector    string  `json:"sector"`
	MarketCap float64 `json:"marketCap"`
	Color     string  `json:"color"`
}

// CompanyDetails bundles the five per-symbol sub-resources. Each field is
// independently nullable: one failed sub-fetch never affects its siblings.
type CompanyDetails struct {
	Symbol     string                 `json:"symbol"`
	Quote      *Quote                 `json:"quote"`
	Profile    *CompanyProfile        `json:"profile"`
	Financials map[string]interface{} `json:"financials"`
	News       []CompanyNews          `json:"news"`
	Earnings   []EarningsEvent        `json:"earnings"`
}

// StockPricesResponse is the /stock-prices envelope
type StockPricesResponse struct {
	Data      []StockPrice `json:"data"`
	Timestamp string       `json:"timestamp"`
}

// MarketCapsResponse is the /fintech-marketcaps envelope. TotalMarketCap is
// the sum of the already-rounded per-entry values so it always matches what
// the displayed rows add up to.
type MarketCapsResponse struct {
	Data           []MarketCap `json:"data"`
	TotalMarketCap float64     `json:"totalMarketCap"`
	Timestamp      string      `json:"timestamp"`
}
