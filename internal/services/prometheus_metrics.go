package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	exportRuns       *prometheus.CounterVec
	exportDuration   prometheus.Histogram
	exportedAccounts prometheus.Gauge
	documentSize     prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		exportRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "export_runs_total",
				Help: "Total number of export runs by outcome",
			},
			[]string{"status"},
		),
		exportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "export_duration_milliseconds",
				Help:    "Export document generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		exportedAccounts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "export_accounts_last_run",
				Help: "Number of accounts included in the most recent export",
			},
		),
		documentSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "export_document_bytes",
				Help:    "Size of generated export documents in bytes",
				Buckets: prometheus.ExponentialBuckets(256, 4, 8),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "export.completed":
		m.exportRuns.WithLabelValues("success").Inc()
	case "export.failed":
		stage := tags["stage"]
		if stage == "" {
			stage = "unknown"
		}
		m.exportRuns.WithLabelValues("failed_" + stage).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "export.generation" {
		m.exportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "export.accounts":
		m.exportedAccounts.Set(value)
	case "export.document_bytes":
		m.documentSize.Observe(value)
	}
}
