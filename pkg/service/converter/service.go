// Package converter answers free-text currency queries: it parses the
// query, resolves rates and formats one result per target currency.
package converter

import (
	"context"
	"log/slog"
	"strings"

	"github.com/amirasaad/fxquery/pkg/conversion"
	"github.com/amirasaad/fxquery/pkg/currency"
	"github.com/amirasaad/fxquery/pkg/metrics"
	"github.com/amirasaad/fxquery/pkg/provider"
	"github.com/amirasaad/fxquery/pkg/query"
)

// RateResolver resolves rates from a base currency to targets.
type RateResolver interface {
	Resolve(
		ctx context.Context,
		apiKey string,
		base currency.Code,
		targets []currency.Code,
		amount string,
	) (provider.RateMap, error)
}

// Request carries one query together with the settings it needs.
type Request struct {
	Search string
	APIKey string
	// FavoriteCurrencies is a comma-separated list used when the query
	// names no targets. Blank means currency.DefaultFavorites.
	FavoriteCurrencies string
}

// Service handles conversion queries. It holds no per-query state and
// may be shared between concurrent callers.
type Service struct {
	resolver RateResolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// New creates a new converter service
func New(
	resolver RateResolver,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		resolver: resolver,
		logger:   logger.With("service", "Converter"),
		metrics:  m,
	}
}

// Handle answers req. An empty list means the search is not a currency
// query; a single notice means it was one but cannot be answered.
// Handle never returns an error.
func (s *Service) Handle(ctx context.Context, req Request) []Result {
	search := strings.TrimSpace(req.Search)
	if search == "" {
		return s.done(metrics.OutcomeNotApplicable, nil)
	}

	parsed := query.Parse(search)
	if !parsed.Valid {
		s.logger.Debug("Not a currency query", "search", search)
		return s.done(metrics.OutcomeNotApplicable, nil)
	}

	if strings.TrimSpace(req.APIKey) == "" {
		s.logger.Warn("API key is not configured")
		return s.done(metrics.OutcomeMissingAPIKey, []Result{newNotice(NoticeMissingAPIKey)})
	}

	targets := parsed.TargetCurrencies
	if len(targets) == 0 {
		targets = currency.Favorites(req.FavoriteCurrencies)
	}
	targets = currency.Without(targets, parsed.BaseCurrency)
	if len(targets) == 0 {
		return s.done(metrics.OutcomeNotApplicable, nil)
	}

	amount := parsed.Amount
	if amount == "" {
		amount = conversion.DefaultAmount
	}

	rates, err := s.resolver.Resolve(ctx, req.APIKey, parsed.BaseCurrency, targets, amount)
	if err != nil || len(rates) == 0 {
		s.logger.Warn("Failed to fetch exchange rates",
			"base", parsed.BaseCurrency, "targets", targets, "error", err)
		return s.done(metrics.OutcomeRatesFailed, []Result{newNotice(NoticeRatesFailed)})
	}

	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		rate, ok := rates[target]
		if !ok {
			continue
		}
		results = append(results, newConversionResult(
			conversion.Format(parsed.BaseCurrency, target, amount, rate),
		))
	}
	s.logger.Debug("Query converted",
		"base", parsed.BaseCurrency, "amount", amount, "results", len(results))
	return s.done(metrics.OutcomeConverted, results)
}

func (s *Service) done(outcome string, results []Result) []Result {
	s.metrics.ObserveQuery(outcome, len(results))
	if results == nil {
		return []Result{}
	}
	return results
}
