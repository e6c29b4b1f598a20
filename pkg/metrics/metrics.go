package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes.
const (
	OutcomeNotApplicable = "not_applicable"
	OutcomeMissingAPIKey = "missing_api_key"
	OutcomeRatesFailed   = "rates_unavailable"
	OutcomeConverted     = "converted"
)

// Provider request results.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds the converter's Prometheus collectors. A nil *Metrics
// records nothing.
type Metrics struct {
	QueriesTotal            *prometheus.CounterVec
	ResultsTotal            prometheus.Counter
	ProviderRequestsTotal   *prometheus.CounterVec
	ProviderRequestDuration *prometheus.HistogramVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		QueriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxquery_queries_total",
				Help: "Queries handled, by outcome",
			},
			[]string{"outcome"},
		),
		ResultsTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "fxquery_conversion_results_total",
				Help: "Conversion records returned to hosts",
			},
		),
		ProviderRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fxquery_provider_requests_total",
				Help: "Requests sent to the rate provider",
			},
			[]string{"endpoint", "result"},
		),
		ProviderRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fxquery_provider_request_duration_seconds",
				Help:    "Rate provider request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}

// ObserveQuery counts one handled query and the records it produced.
func (m *Metrics) ObserveQuery(outcome string, results int) {
	if m == nil {
		return
	}
	m.QueriesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeConverted {
		m.ResultsTotal.Add(float64(results))
	}
}

// ObserveProviderRequest records one provider round trip.
func (m *Metrics) ObserveProviderRequest(endpoint string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.ProviderRequestsTotal.WithLabelValues(endpoint, result).Inc()
	m.ProviderRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
