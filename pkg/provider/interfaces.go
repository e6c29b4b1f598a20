package provider

import (
	"context"
	"errors"

	"github.com/amirasaad/fxquery/pkg/currency"
)

// ErrRatesUnavailable is returned for every resolution failure. The
// underlying cause is wrapped for logging but callers only test for
// this sentinel.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")

// RateMap maps a target currency to its rate from the base currency.
// Targets that could not be resolved are absent.
type RateMap map[currency.Code]float64

// RateFetcher defines the calls a rate provider must support.
type RateFetcher interface {
	// FetchPairRate returns the provider's conversion_rate from one
	// currency to another for amount. The formatter applies amount to it.
	FetchPairRate(ctx context.Context, apiKey string, from, to currency.Code, amount string) (float64, error)

	// FetchLatestRates returns unit rates from base to every currency
	// the provider knows.
	FetchLatestRates(ctx context.Context, apiKey string, base currency.Code) (map[string]float64, error)

	// Name returns the provider's name for logging.
	Name() string
}
