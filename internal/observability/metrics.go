// Package observability provides Prometheus metrics for the estimate service.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	EstimatesTotal  *prometheus.CounterVec
	RejectedTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	LastProfit      *prometheus.GaugeVec
}

func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "boxoffice"
	}
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		EstimatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "estimate",
			Name:      "computed_total",
			Help:      "Total number of event estimates computed by outcome",
		}, []string{"status"}),
		RejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "estimate",
			Name:      "rejected_total",
			Help:      "Total number of estimate requests rejected by reason",
		}, []string{"code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "status"}),
		LastProfit: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "estimate",
			Name:      "last_profit_dollars",
			Help:      "Profit of the most recent estimate per commentator tier",
		}, []string{"commentator"}),
	}
	registry.MustRegister(m.EstimatesTotal, m.RejectedTotal, m.RequestDuration, m.LastProfit)
	return m
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RecordEstimate(status, commentator string, profit float64) {
	m.EstimatesTotal.WithLabelValues(status).Inc()
	m.LastProfit.WithLabelValues(commentator).Set(profit)
}

func (m *Metrics) RecordRejected(code string) {
	m.RejectedTotal.WithLabelValues(code).Inc()
}

func (m *Metrics) ObserveRequest(path, status string, seconds float64) {
	m.RequestDuration.WithLabelValues(path, status).Observe(seconds)
}
