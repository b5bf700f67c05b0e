package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsSnapshot is a lightweight summary of the collected metrics.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	DocumentLoads            uint64    `json:"documentLoads"`
	DocumentFallbacks        uint64    `json:"documentFallbacks"`
	DocumentWrites           uint64    `json:"documentWrites"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}

// MetricsService owns the Prometheus registry for HTTP traffic and document
// store operations.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	documentOps     *prometheus.HistogramVec
	documentBytes   prometheus.Gauge

	requestCount         uint64
	requestDurationTotal uint64
	loadCount            uint64
	fallbackCount        uint64
	writeCount           uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	documentOps := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lms_document_operation_seconds",
		Help:    "Duration of document store loads and writes",
		Buckets: prometheus.DefBuckets,
	}, []string{"op", "outcome"})

	documentBytes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lms_document_export_bytes",
		Help: "Size of the last rendered export",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, documentOps, documentBytes, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		documentOps:     documentOps,
		documentBytes:   documentBytes,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveDocumentOp records one document store load or persist.
func (m *MetricsService) ObserveDocumentOp(op, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.documentOps.WithLabelValues(op, outcome).Observe(duration.Seconds())
	switch op {
	case "load":
		atomic.AddUint64(&m.loadCount, 1)
		if outcome != "hit" {
			atomic.AddUint64(&m.fallbackCount, 1)
		}
	case "persist":
		atomic.AddUint64(&m.writeCount, 1)
	}
}

// ObserveExport records the size of a rendered export.
func (m *MetricsService) ObserveExport(size int) {
	if m == nil {
		return
	}
	m.documentBytes.Set(float64(size))
}

// Snapshot returns aggregated counters.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		DocumentLoads:            atomic.LoadUint64(&m.loadCount),
		DocumentFallbacks:        atomic.LoadUint64(&m.fallbackCount),
		DocumentWrites:           atomic.LoadUint64(&m.writeCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
