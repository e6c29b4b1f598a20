package provider

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/fxquery/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRateFetcher is a mock implementation for testing
type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchPairRate(
	ctx context.Context,
	apiKey string,
	from, to currency.Code,
	amount string,
) (float64, error) {
	args := m.Called(ctx, apiKey, from, to, amount)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRateFetcher) FetchLatestRates(
	ctx context.Context,
	apiKey string,
	base currency.Code,
) (map[string]float64, error) {
	args := m.Called(ctx, apiKey, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockRateFetcher) Name() string {
	return "mock"
}

func newTestResolver(f RateFetcher) *Resolver {
	return NewResolver(f, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestResolve_SingleTargetUsesPairEndpoint(t *testing.T) {
	ctx := context.Background()
	f := new(MockRateFetcher)
	f.On("FetchPairRate", ctx, "key", currency.Code("USD"), currency.Code("EUR"), "100").
		Return(85.0, nil).Once()

	rates, err := newTestResolver(f).Resolve(ctx, "key", "USD", []currency.Code{"EUR"}, "100")

	require.NoError(t, err)
	assert.Equal(t, RateMap{"EUR": 85.0}, rates)
	f.AssertExpectations(t)
	f.AssertNotCalled(t, "FetchLatestRates", mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_ManyTargetsUseLatestEndpoint(t *testing.T) {
	ctx := context.Background()
	f := new(MockRateFetcher)
	f.On("FetchLatestRates", ctx, "key", currency.Code("USD")).
		Return(map[string]float64{"USD": 1, "EUR": 0.9, "GBP": 0.8, "JPY": 150}, nil).Once()

	rates, err := newTestResolver(f).Resolve(ctx, "key", "USD", []currency.Code{"EUR", "XXX", "GBP"}, "1")

	require.NoError(t, err)
	assert.Equal(t, RateMap{"EUR": 0.9, "GBP": 0.8}, rates)
	f.AssertExpectations(t)
	f.AssertNotCalled(t, "FetchPairRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolve_LatestWithNoMatchesIsEmpty(t *testing.T) {
	ctx := context.Background()
	f := new(MockRateFetcher)
	f.On("FetchLatestRates", ctx, "key", currency.Code("USD")).
		Return(map[string]float64{"USD": 1}, nil)

	rates, err := newTestResolver(f).Resolve(ctx, "key", "USD", []currency.Code{"AAA", "BBB"}, "1")

	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestResolve_FailuresCollapseToSentinel(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("connection refused")

	pair := new(MockRateFetcher)
	pair.On("FetchPairRate", ctx, "key", currency.Code("USD"), currency.Code("EUR"), "1").Return(0.0, cause)
	_, err := newTestResolver(pair).Resolve(ctx, "key", "USD", []currency.Code{"EUR"}, "1")
	require.ErrorIs(t, err, ErrRatesUnavailable)
	assert.ErrorIs(t, err, cause)

	bulk := new(MockRateFetcher)
	bulk.On("FetchLatestRates", ctx, "key", currency.Code("USD")).Return(nil, cause)
	_, err = newTestResolver(bulk).Resolve(ctx, "key", "USD", []currency.Code{"EUR", "GBP"}, "1")
	require.ErrorIs(t, err, ErrRatesUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestResolve_RejectsUnusableRates(t *testing.T) {
	ctx := context.Background()
	f := new(MockRateFetcher)
	f.On("FetchPairRate", ctx, "key", currency.Code("USD"), currency.Code("EUR"), "1").Return(0.0, nil)

	_, err := newTestResolver(f).Resolve(ctx, "key", "USD", []currency.Code{"EUR"}, "1")
	require.ErrorIs(t, err, ErrRatesUnavailable)

	bulk := new(MockRateFetcher)
	bulk.On("FetchLatestRates", ctx, "key", currency.Code("USD")).
		Return(map[string]float64{"EUR": 0, "GBP": -1, "JPY": 150}, nil)
	rates, err := newTestResolver(bulk).Resolve(ctx, "key", "USD", []currency.Code{"EUR", "GBP", "JPY"}, "1")
	require.NoError(t, err)
	assert.Equal(t, RateMap{"JPY": 150}, rates)
}

func TestResolve_NoTargets(t *testing.T) {
	f := new(MockRateFetcher)
	_, err := newTestResolver(f).Resolve(context.Background(), "key", "USD", nil, "1")
	require.ErrorIs(t, err, ErrRatesUnavailable)
	f.AssertExpectations(t)
}
