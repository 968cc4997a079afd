// Сбор HTTP-метрик (если включены в конфиге).
package middleware

import (
	"net/http"
	"time"

	"github.com/dkovalev/go-sso-todo/internal/server/metrics"
)

// MetricsMiddleware записывает метод, статус и длительность каждого запроса
// в переданный Collector.
func MetricsMiddleware(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wr := &ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wr, r)

			status := wr.Status
			if status == 0 {
				status = http.StatusOK
			}
			collector.RecordRequest(r.Method, status, time.Since(start))
		})
	}
}
