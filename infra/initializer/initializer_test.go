package initializer

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/amirasaad/fxquery/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(format string) *config.App {
	return &config.App{
		Env: "test",
		Log: &config.Log{
			Level:      -4,
			Format:     format,
			TimeFormat: "15:04:05",
			Prefix:     "[test]",
		},
		ExchangeRateApi: &config.ExchangeRateApi{ApiUrl: "http://localhost:0/v6"},
		Converter:       &config.Converter{FavoriteCurrencies: "USD,EUR"},
	}
}

func TestInitializeDependencies(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer

	deps, err := InitializeDependencies(testConfig("text"), &buf)
	require.NoError(t, err)

	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Metrics)
	assert.NotNil(t, deps.Registry)
	require.NotNil(t, deps.RateFetcher)
	assert.Equal(t, "exchangerate-api", deps.RateFetcher.Name())
	assert.Contains(t, buf.String(), "Rate provider configured")

	families, err := deps.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestInitializeDependencies_IncompleteConfig(t *testing.T) {
	_, err := InitializeDependencies(&config.App{}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = InitializeDependencies(nil, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetupLogger_JSONFormat(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer

	logger := SetupLogger(testConfig("json").Log, &buf)
	logger.Info("hello", "base", "USD")

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"base":"USD"`)
}

func TestSetupLogger_RespectsLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var buf bytes.Buffer
	cfg := testConfig("text").Log
	cfg.Level = 8

	logger := SetupLogger(cfg, &buf)
	logger.Info("quiet")
	logger.Error("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
