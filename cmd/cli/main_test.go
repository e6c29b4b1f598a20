package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/fxquery/pkg/service/converter"
	"github.com/amirasaad/fxquery/pkg/testutils"
	"github.com/stretchr/testify/assert"
)

func runCLI(t *testing.T, fetcher *testutils.StubRateFetcher, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(
		context.Background(),
		testutils.NewTestApp(fetcher, nil),
		args,
		&stdout,
		&stderr,
		false,
	)
	return code, stdout.String(), stderr.String()
}

func TestExecute_Renders(t *testing.T) {
	fetcher := &testutils.StubRateFetcher{Latest: map[string]float64{"EUR": 0.5, "GBP": 0.25}}

	code, out, _ := runCLI(t, fetcher, "100", "usd", "to", "eur,gbp")

	assert.Equal(t, exitOK, code)
	assert.Equal(t,
		"100 USD = 50 EUR\n  1 EUR = 2 USD. Press Enter to copy\n"+
			"100 USD = 25 GBP\n  1 GBP = 4 USD. Press Enter to copy\n",
		out,
	)
}

func TestExecute_Copy(t *testing.T) {
	fetcher := &testutils.StubRateFetcher{Pair: 0.85}

	code, out, _ := runCLI(t, fetcher, "-copy", "100 usd to eur")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "85\n", out)
}

func TestExecute_NotAQuery(t *testing.T) {
	fetcher := &testutils.StubRateFetcher{}

	code, out, errOut := runCLI(t, fetcher, "hello", "world")

	assert.Equal(t, exitNoResults, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "not a currency query")
	assert.Zero(t, fetcher.CallCount())
}

func TestExecute_Usage(t *testing.T) {
	code, _, errOut := runCLI(t, &testutils.StubRateFetcher{})
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "Usage")

	code, _, _ = runCLI(t, &testutils.StubRateFetcher{}, "-bogus")
	assert.Equal(t, exitUsage, code)
}

func TestExecute_ProviderFailure(t *testing.T) {
	fetcher := &testutils.StubRateFetcher{Err: assert.AnError}

	code, out, _ := runCLI(t, fetcher, "100", "usd", "to", "eur")
	assert.Equal(t, exitFailure, code)
	assert.Equal(t, converter.NoticeRatesFailed+"\n", out)

	code, out, errOut := runCLI(t, fetcher, "-copy", "100", "usd", "to", "eur")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, converter.NoticeRatesFailed)
}

func TestRender_Colored(t *testing.T) {
	var buf bytes.Buffer
	render(&buf, []converter.Result{{Kind: converter.KindConversion, Title: "1 USD = 2 EUR"}}, true)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "1 USD = 2 EUR")
}

func TestQuietStartupLogs(t *testing.T) {
	prev := quietStartupLogs()
	defer slog.SetLogLoggerLevel(prev)

	ctx := context.Background()
	assert.False(t, slog.Default().Enabled(ctx, slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelWarn))
}
