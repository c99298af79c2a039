package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/tiktok-sales-api/pkg/metrics"
)

// Metrics registra contagem e latência usando o padrão da rota, não a URL
func Metrics(method, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(startTime).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(lrw.statusCode)).Inc()
		})
	}
}
