package app

import (
	"log/slog"

	"github.com/amirasaad/fxquery/pkg/config"
	"github.com/amirasaad/fxquery/pkg/metrics"
	"github.com/amirasaad/fxquery/pkg/provider"
	"github.com/amirasaad/fxquery/pkg/service/converter"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	RateFetcher provider.RateFetcher
	Metrics     *metrics.Metrics
	Registry    *prometheus.Registry
	Logger      *slog.Logger
}

type App struct {
	Deps             *Deps
	Config           *config.App
	ConverterService *converter.Service
}

func New(deps *Deps, cfg *config.App) *App {
	resolver := provider.NewResolver(deps.RateFetcher, deps.Logger)
	return &App{
		Deps:             deps,
		Config:           cfg,
		ConverterService: converter.New(resolver, deps.Logger, deps.Metrics),
	}
}

// Request builds a converter request from search, filling the API key
// and favorites from config where the caller gave none.
func (a *App) Request(search, apiKey, favorites string) converter.Request {
	if apiKey == "" {
		apiKey = a.Config.ExchangeRateApi.ApiKey
	}
	if favorites == "" {
		favorites = a.Config.Converter.FavoriteCurrencies
	}
	return converter.Request{
		Search:             search,
		APIKey:             apiKey,
		FavoriteCurrencies: favorites,
	}
}
