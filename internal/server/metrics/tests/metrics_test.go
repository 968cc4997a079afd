package tests

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dkovalev/go-sso-todo/internal/server/metrics"
)

// Счётчик и гистограмма попадают в выдачу /metrics
func TestCollector_RecordRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	collector.RecordRequest(http.MethodPost, http.StatusOK, 25*time.Millisecond)
	collector.RecordRequest(http.MethodPost, http.StatusOK, 10*time.Millisecond)
	collector.RecordRequest(http.MethodGet, http.StatusUnauthorized, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	metrics.Handler(registry).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}

	body := rr.Body.String()
	if !strings.Contains(body, `ssotodo_http_requests_total{method="POST",status="200"} 2`) {
		t.Fatalf("counter missing: %s", body)
	}
	if !strings.Contains(body, `ssotodo_http_requests_total{method="GET",status="401"} 1`) {
		t.Fatalf("counter missing: %s", body)
	}
	if !strings.Contains(body, "ssotodo_http_request_duration_seconds") {
		t.Fatalf("histogram missing: %s", body)
	}
}
