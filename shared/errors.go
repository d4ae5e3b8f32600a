package shared

import (
	"errors"
	"fmt"
)

// UpstreamError reports a non-2xx response from the market-data provider for
// a single symbol/resource fetch. Callers decide whether the failure is
// fatal or tolerable; the route handlers treat it as a per-symbol miss.
type UpstreamError struct {
	Resource   string // quote, profile, financials, news, earnings
	Symbol     string
	StatusCode int
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to fetch %s for %s: upstream returned HTTP %d", e.Resource, e.Symbol, e.StatusCode)
}

// NewUpstreamError creates an UpstreamError for a failed resource fetch
func NewUpstreamError(resource, symbol string, statusCode int) *UpstreamError {
	return &UpstreamError{
		Resource:   resource,
		Symbol:     symbol,
		StatusCode: statusCode,
	}
}

// IsUpstreamError reports whether err is (or wraps) an UpstreamError
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
