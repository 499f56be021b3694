// Package metrics defines the Prometheus collectors of the invoice service.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/invoicesplit/internal/quote"
	"github.com/mmynk/invoicesplit/internal/upi"
	"github.com/mmynk/invoicesplit/internal/validation"
)

const namespace = "invoicesplit"

// Metrics groups the collectors.
type Metrics struct {
	Quotes             *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	LinksIssued        *prometheus.CounterVec
	RPCRequests        *prometheus.CounterVec
	RPCDuration        *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Quotes computed, by whether every input validated.",
		}, []string{"ready"}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Invalid form fields seen while computing quotes.",
		}, []string{"field"}),
		LinksIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_links_total",
			Help:      "Payment links produced, by invoice component.",
		}, []string{"category"}),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling time.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"procedure"}),
	}

	reg.MustRegister(m.Quotes, m.ValidationFailures, m.LinksIssued, m.RPCRequests, m.RPCDuration)
	return m
}

// ObserveQuote records the outcome of one computed quote.
func (m *Metrics) ObserveQuote(q quote.Quote) {
	if m == nil {
		return
	}
	m.Quotes.WithLabelValues(strconv.FormatBool(q.Ready)).Inc()
	for _, f := range q.Validation.Failures() {
		m.ValidationFailures.WithLabelValues(f.String()).Inc()
	}
	for _, c := range upi.Categories {
		if _, ok := q.Links[c]; ok {
			m.LinksIssued.WithLabelValues(c.String()).Inc()
		}
	}
}

// ObserveRPC records one finished RPC call.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

// Preload initializes the per-field and per-category series at zero so
// dashboards show them before the first failure.
func (m *Metrics) Preload() {
	if m == nil {
		return
	}
	for _, f := range validation.Fields {
		m.ValidationFailures.WithLabelValues(f.String())
	}
	for _, c := range upi.Categories {
		m.LinksIssued.WithLabelValues(c.String())
	}
}
