package http

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"autonomous-task-extraction/internal/model"
)

const (
	endpointExtract = "extract"
	endpointExplain = "explain"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the extraction endpoints.
//
// Metrics:
//   - extraction_requests_total{endpoint,origin}
//   - extraction_candidates_total{strategy}
//   - extraction_confidence
//   - extraction_duration_seconds{endpoint}
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	CandidatesTotal *prometheus.CounterVec
	Confidence      prometheus.Histogram
	Duration        *prometheus.HistogramVec
}

// NewMetrics registers the extraction metrics once per process and returns them.
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			RequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "extraction_requests_total",
					Help: "Total number of extraction requests",
				},
				[]string{"endpoint", "origin"},
			),
			CandidatesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "extraction_candidates_total",
					Help: "Total number of returned candidates by strategy",
				},
				[]string{"strategy"},
			),
			Confidence: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "extraction_confidence",
					Help:    "Overall confidence of returned candidates",
					Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
				},
			),
			Duration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "extraction_duration_seconds",
					Help:    "Duration of extraction requests in seconds",
					Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
				},
				[]string{"endpoint"},
			),
		}
	})
	return globalMetrics
}

// observe is a no-op on a nil receiver so handlers can run without metrics.
func (m *Metrics) observe(endpoint string, origin model.Origin, tasks []model.ExtractedTask, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(endpoint, string(origin)).Inc()
	m.Duration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	for _, t := range tasks {
		m.CandidatesTotal.WithLabelValues(string(t.StrategyUsed)).Inc()
		m.Confidence.Observe(t.OverallConfidence)
	}
}
