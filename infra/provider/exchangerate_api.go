package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amirasaad/fxquery/pkg/config"
	"github.com/amirasaad/fxquery/pkg/currency"
	"github.com/amirasaad/fxquery/pkg/metrics"
	"github.com/amirasaad/fxquery/pkg/provider"
)

// Endpoint names, also used as metric labels.
const (
	EndpointPair   = "pair"
	EndpointLatest = "latest"
)

const (
	resultSuccess   = "success"
	maxErrorBodyLen = 512
)

var (
	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrProviderResult is returned when the payload reports a failure.
	ErrProviderResult = errors.New("provider reported failure")
)

// ExchangeRateAPIProvider implements provider.RateFetcher for exchangerate-api.com.
// It keeps no state between calls and is safe for concurrent use.
type ExchangeRateAPIProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// PairResponse is the body of the v6 pair endpoint.
// See: https://www.exchangerate-api.com/docs/pair-conversion-requests
type PairResponse struct {
	Result           string  `json:"result"`
	BaseCode         string  `json:"base_code"`
	TargetCode       string  `json:"target_code"`
	ConversionRate   float64 `json:"conversion_rate"`
	ConversionResult float64 `json:"conversion_result"`
	ErrorType        string  `json:"error-type,omitempty"`
}

// LatestResponse is the body of the v6 latest endpoint.
// See: https://www.exchangerate-api.com/docs/standard-requests
type LatestResponse struct {
	Result             string             `json:"result"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	TimeNextUpdateUnix int64              `json:"time_next_update_unix"`
	BaseCode           string             `json:"base_code"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	ErrorType          string             `json:"error-type,omitempty"`
}

// response is implemented by every decoded payload.
type response interface {
	failure() error
}

func (r *PairResponse) failure() error {
	return resultError(r.Result, r.ErrorType)
}

func (r *LatestResponse) failure() error {
	return resultError(r.Result, r.ErrorType)
}

func resultError(result, errorType string) error {
	if result == resultSuccess {
		return nil
	}
	return fmt.Errorf("%w: result=%s error-type=%s", ErrProviderResult, result, errorType)
}

// NewExchangeRateAPIProvider creates a new ExchangeRate API provider using config.
// A zero HTTPTimeout leaves the transport defaults in place.
func NewExchangeRateAPIProvider(
	cfg *config.ExchangeRateApi,
	logger *slog.Logger,
	m *metrics.Metrics,
) *ExchangeRateAPIProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExchangeRateAPIProvider{
		baseURL:    strings.TrimRight(cfg.ApiUrl, "/"),
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		logger:     logger,
		metrics:    m,
	}
}

// FetchPairRate calls {base}/{key}/pair/{from}/{to}/{amount}.
func (p *ExchangeRateAPIProvider) FetchPairRate(
	ctx context.Context,
	apiKey string,
	from, to currency.Code,
	amount string,
) (float64, error) {
	var resp PairResponse
	if err := p.get(ctx, EndpointPair, &resp, apiKey, EndpointPair, from.String(), to.String(), amount); err != nil {
		return 0, err
	}
	return resp.ConversionRate, nil
}

// FetchLatestRates calls {base}/{key}/latest/{base_currency}.
func (p *ExchangeRateAPIProvider) FetchLatestRates(
	ctx context.Context,
	apiKey string,
	base currency.Code,
) (map[string]float64, error) {
	var resp LatestResponse
	if err := p.get(ctx, EndpointLatest, &resp, apiKey, EndpointLatest, base.String()); err != nil {
		return nil, err
	}
	p.logger.Debug("Latest rates fetched", "base", base, "count", len(resp.ConversionRates))
	return resp.ConversionRates, nil
}

// Name returns the provider's name
func (p *ExchangeRateAPIProvider) Name() string {
	return "exchangerate-api"
}

// get performs one GET on the path built from segments, decodes the
// JSON body into out and checks the payload's result field.
func (p *ExchangeRateAPIProvider) get(
	ctx context.Context,
	endpoint string,
	out response,
	segments ...string,
) (err error) {
	start := time.Now()
	defer func() {
		p.metrics.ObserveProviderRequest(endpoint, err, time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpointURL(segments...), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	p.logger.Debug("Requesting exchange rates", "endpoint", endpoint)
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return out.failure()
}

func (p *ExchangeRateAPIProvider) endpointURL(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return p.baseURL + "/" + strings.Join(escaped, "/")
}

// Ensure ExchangeRateAPIProvider implements provider.RateFetcher
var _ provider.RateFetcher = (*ExchangeRateAPIProvider)(nil)
