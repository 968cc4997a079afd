// Package metrics содержит сбор и публикацию Prometheus-метрик.
//
// Метрики выключены по умолчанию (observability.metrics в конфиге):
// публичный контракт демо-API не содержит /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector собирает метрики HTTP-слоя.
type Collector struct {
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewCollector создаёт Collector и регистрирует метрики в переданном registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ssotodo_http_requests_total",
			Help: "Количество HTTP-запросов по методу и статусу ответа",
		}, []string{"method", "status"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ssotodo_http_request_duration_seconds",
			Help:    "Длительность обработки HTTP-запроса (секунды)",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.requests, c.latency)

	return c
}

// RecordRequest записывает завершённый HTTP-запрос.
func (c *Collector) RecordRequest(method string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	c.latency.Observe(duration.Seconds())
}

// Handler возвращает HTTP-хендлер для Prometheus-скрейпа.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
