package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceSnapshot(t *testing.T) {
	m := NewMetricsService()

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/users", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/users", http.StatusOK, 40*time.Millisecond)
	m.ObserveDocumentOp("load", "hit", time.Millisecond)
	m.ObserveDocumentOp("load", "corrupt", time.Millisecond)
	m.ObserveDocumentOp("persist", "ok", time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.RequestsTotal)
	assert.InDelta(t, 30.0, snap.AverageRequestDurationMs, 0.001)
	assert.Equal(t, uint64(2), snap.DocumentLoads)
	assert.Equal(t, uint64(1), snap.DocumentFallbacks)
	assert.Equal(t, uint64(1), snap.DocumentWrites)
}

func TestMetricsServiceHandlerExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ObserveDocumentOp("load", "seeded", time.Millisecond)
	m.ObserveExport(2048)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lms_document_operation_seconds_count{op="load",outcome="seeded"} 1`)
	assert.Contains(t, rec.Body.String(), "lms_document_export_bytes 2048")
}

func TestNilMetricsServiceIsSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveDocumentOp("load", "hit", time.Millisecond)
	m.ObserveExport(1)
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
