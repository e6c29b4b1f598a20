package provider

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/amirasaad/fxquery/pkg/currency"
)

// Resolver picks a fetch strategy for a set of targets and turns the
// provider's answer into a RateMap.
type Resolver struct {
	fetcher RateFetcher
	logger  *slog.Logger
}

// NewResolver creates a Resolver on top of fetcher.
func NewResolver(fetcher RateFetcher, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{fetcher: fetcher, logger: logger}
}

// Resolve fetches rates from base to targets with exactly one provider
// request: the pair endpoint for a single target, the latest-rates
// endpoint otherwise. Every failure wraps ErrRatesUnavailable.
func (r *Resolver) Resolve(
	ctx context.Context,
	apiKey string,
	base currency.Code,
	targets []currency.Code,
	amount string,
) (RateMap, error) {
	switch len(targets) {
	case 0:
		return nil, fmt.Errorf("%w: no target currencies", ErrRatesUnavailable)
	case 1:
		return r.resolvePair(ctx, apiKey, base, targets[0], amount)
	default:
		return r.resolveBulk(ctx, apiKey, base, targets)
	}
}

func (r *Resolver) resolvePair(
	ctx context.Context,
	apiKey string,
	base, target currency.Code,
	amount string,
) (RateMap, error) {
	rate, err := r.fetcher.FetchPairRate(ctx, apiKey, base, target, amount)
	if err != nil {
		r.logger.Warn("Pair rate request failed",
			"provider", r.fetcher.Name(), "base", base, "target", target, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRatesUnavailable, err)
	}
	if !usableRate(rate) {
		r.logger.Warn("Provider returned unusable pair rate",
			"provider", r.fetcher.Name(), "base", base, "target", target, "rate", rate)
		return nil, fmt.Errorf("%w: unusable rate %v for %s/%s", ErrRatesUnavailable, rate, base, target)
	}
	return RateMap{target: rate}, nil
}

func (r *Resolver) resolveBulk(
	ctx context.Context,
	apiKey string,
	base currency.Code,
	targets []currency.Code,
) (RateMap, error) {
	all, err := r.fetcher.FetchLatestRates(ctx, apiKey, base)
	if err != nil {
		r.logger.Warn("Latest rates request failed",
			"provider", r.fetcher.Name(), "base", base, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRatesUnavailable, err)
	}

	rates := make(RateMap, len(targets))
	for _, target := range targets {
		rate, ok := all[target.String()]
		if !ok || !usableRate(rate) {
			r.logger.Debug("Target missing from latest rates", "base", base, "target", target)
			continue
		}
		rates[target] = rate
	}
	return rates, nil
}

func usableRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate)
}
