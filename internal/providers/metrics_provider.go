package providers

import (
	"time"
	"wadboard/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	ObservePersistenceDuration(duration time.Duration)
	SetRecordsTotal(collection string, count int)
	IncProbeResults(method, status string)
	ObserveSweepDuration(duration time.Duration)
	IncWolRuns(result string)
	SetActiveSessions(count int)
}

type MetricsProvider struct {
	requestsTotal       *prometheus.CounterVec
	requestDuration     *prometheus.HistogramVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
	persistenceDuration prometheus.Histogram
	recordsTotal        *prometheus.GaugeVec
	probeResults        *prometheus.CounterVec
	sweepDuration       prometheus.Histogram
	wolRuns             *prometheus.CounterVec
	activeSessions      prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) ObservePersistenceDuration(duration time.Duration) {
	m.persistenceDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) SetRecordsTotal(collection string, count int) {
	m.recordsTotal.WithLabelValues(collection).Set(float64(count))
}

func (m *MetricsProvider) IncProbeResults(method, status string) {
	m.probeResults.WithLabelValues(method, status).Inc()
}

func (m *MetricsProvider) ObserveSweepDuration(duration time.Duration) {
	m.sweepDuration.Observe(duration.Seconds())
}

// IncWolRuns folds every http_<code> result into one label value to keep cardinality flat.
func (m *MetricsProvider) IncWolRuns(result string) {
	if result != "ok" && result != "error" {
		result = "http"
	}
	m.wolRuns.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) SetActiveSessions(count int) {
	m.activeSessions.Set(float64(count))
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wadboard_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wadboard_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wadboard_cache_hits_total",
			Help: "Total number of state cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wadboard_cache_misses_total",
			Help: "Total number of state cache misses",
		}),

		persistenceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "wadboard_persistence_duration_seconds",
			Help:    "Duration of data file writes in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		recordsTotal: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "wadboard_records_total",
			Help: "Number of records per collection",
		}, []string{"collection"}),

		probeResults: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wadboard_probe_results_total",
			Help: "Probe outcomes by method and status",
		}, []string{"method", "status"}),

		sweepDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "wadboard_sweep_duration_seconds",
			Help:    "Duration of full probe sweeps in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 40},
		}),

		wolRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wadboard_wol_runs_total",
			Help: "Remote task executions by outcome",
		}, []string{"result"}),

		activeSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "wadboard_sessions_active",
			Help: "Number of admin sessions held in memory",
		}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) ObservePersistenceDuration(_ time.Duration)       {}
func (n *noopMetrics) SetRecordsTotal(_ string, _ int)                  {}
func (n *noopMetrics) IncProbeResults(_, _ string)                      {}
func (n *noopMetrics) ObserveSweepDuration(_ time.Duration)             {}
func (n *noopMetrics) IncWolRuns(_ string)                              {}
func (n *noopMetrics) SetActiveSessions(_ int)                          {}
