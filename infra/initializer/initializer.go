package initializer

import (
	"errors"
	"io"

	infra_provider "github.com/amirasaad/fxquery/infra/provider"
	"github.com/amirasaad/fxquery/pkg/app"
	"github.com/amirasaad/fxquery/pkg/config"
	"github.com/amirasaad/fxquery/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// InitializeDependencies initializes all the application dependencies.
// Logs are written to logOut.
func InitializeDependencies(cfg *config.App, logOut io.Writer) (*app.Deps, error) {
	if cfg == nil || cfg.Log == nil || cfg.ExchangeRateApi == nil {
		return nil, errors.New("incomplete configuration")
	}

	logger := SetupLogger(cfg.Log, logOut)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	fetcher := infra_provider.NewExchangeRateAPIProvider(cfg.ExchangeRateApi, logger, m)
	logger.Info("Rate provider configured",
		"provider", fetcher.Name(),
		"url", cfg.ExchangeRateApi.ApiUrl,
		"timeout", cfg.ExchangeRateApi.HTTPTimeout,
	)

	return &app.Deps{
		RateFetcher: fetcher,
		Metrics:     m,
		Registry:    registry,
		Logger:      logger,
	}, nil
}
