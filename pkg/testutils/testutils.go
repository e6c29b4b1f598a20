package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/amirasaad/fxquery/pkg/app"
	"github.com/amirasaad/fxquery/pkg/config"
	"github.com/amirasaad/fxquery/pkg/currency"
	"github.com/amirasaad/fxquery/pkg/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// StubRateFetcher answers from fixed data and records what it was asked.
type StubRateFetcher struct {
	mu      sync.Mutex
	Pair    float64
	Latest  map[string]float64
	Err     error
	Calls   int
	APIKeys []string
}

func (f *StubRateFetcher) FetchPairRate(
	_ context.Context,
	apiKey string,
	_, _ currency.Code,
	_ string,
) (float64, error) {
	f.record(apiKey)
	return f.Pair, f.Err
}

func (f *StubRateFetcher) FetchLatestRates(
	_ context.Context,
	apiKey string,
	_ currency.Code,
) (map[string]float64, error) {
	f.record(apiKey)
	return f.Latest, f.Err
}

func (f *StubRateFetcher) Name() string { return "stub" }

func (f *StubRateFetcher) record(apiKey string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	f.APIKeys = append(f.APIKeys, apiKey)
}

// CallCount returns how many provider calls were made.
func (f *StubRateFetcher) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestConfig returns a complete configuration suitable for tests.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{Format: "text", Prefix: "[test]"},
		RateLimit: &config.RateLimit{
			MaxRequests: 1000,
			Window:      time.Second,
		},
		ExchangeRateApi: &config.ExchangeRateApi{
			ApiKey: "config-key",
			ApiUrl: "http://localhost:0/v6",
		},
		Converter: &config.Converter{FavoriteCurrencies: currency.DefaultFavorites},
	}
}

// NewTestApp wires an App around fetcher with a fresh metrics registry.
func NewTestApp(fetcher *StubRateFetcher, cfg *config.App) *app.App {
	if cfg == nil {
		cfg = TestConfig()
	}
	registry := prometheus.NewRegistry()
	deps := &app.Deps{
		RateFetcher: fetcher,
		Metrics:     metrics.New(registry),
		Registry:    registry,
		Logger:      DiscardLogger(),
	}
	return app.New(deps, cfg)
}

// MakeRequestWithApp sends a request through app and returns the response.
// Headers are given as alternating name, value pairs.
func MakeRequestWithApp(app *fiber.App, method, path string, headers ...string) *http.Response {
	req := httptest.NewRequest(method, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}
