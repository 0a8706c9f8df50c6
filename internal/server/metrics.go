package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// Metrics holds the Prometheus collectors of the uplink webhook.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	uplinksTotal        *prometheus.CounterVec
	payloadBytes        prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bresser_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bresser_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		uplinksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bresser_uplinks_decoded_total",
				Help: "Total number of uplink payloads processed, by profile and result",
			},
			[]string{"profile", "result"},
		),
		payloadBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bresser_uplink_payload_bytes",
				Help:    "Size of received uplink payloads",
				Buckets: prometheus.LinearBuckets(8, 8, 8),
			},
		),
	}
}

// RecordUplink counts one processed payload.
func (m *Metrics) RecordUplink(profile string, size int, ok bool) {
	result := resultOK
	if !ok {
		result = resultError
	}
	m.uplinksTotal.WithLabelValues(profile, result).Inc()
	m.payloadBytes.Observe(float64(size))
}

// Instrument records request count and latency per route pattern.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
