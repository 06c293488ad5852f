package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// unmatchedRoute labels requests that no registered pattern served.
	unmatchedRoute = "unmatched"
	// otherMethod labels requests whose method no route or middleware serves.
	otherMethod = "other"
)

// methodLabel bounds the method label to the verbs the server answers.
// GET patterns also serve HEAD, and OPTIONS is answered by the CORS middleware.
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return method
	default:
		return otherMethod
	}
}

type httpMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func newHTTPMetrics(registry prometheus.Registerer) *httpMetrics {
	m := &httpMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "todos_http_requests_total",
			Help: "The total number of HTTP requests served",
		}, []string{"method", "route", "status"}),

		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "todos_http_request_duration_seconds",
			Help:    "The latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

func (m *httpMetrics) observe(method, route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// metricsMiddleware must sit directly in front of the mux so that the
// request it forwards is the one the mux annotates with the matched pattern.
func (s *serverImpl) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(ww, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		s.metrics.observe(methodLabel(r.Method), route, ww.statusCode, time.Since(start))
	})
}
