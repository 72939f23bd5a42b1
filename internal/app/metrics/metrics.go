// Package metrics exposes the application's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "irongym",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "irongym",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "irongym",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	storeOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "irongym",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total number of record store operations against the CSV files.",
		},
		[]string{"entity", "op", "status"},
	)

	reportBuilds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "irongym",
			Subsystem: "reports",
			Name:      "build_duration_seconds",
			Help:      "Duration of payment report aggregation.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"format"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		storeOperations,
		reportBuilds,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		duration := time.Since(start)
		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	})
}

// RecordStoreOperation counts a load or mutation against an entity table.
func RecordStoreOperation(entity, op string, ok bool) {
	status := "ok"
	if !ok {
		status = "error"
	}
	storeOperations.WithLabelValues(entity, op, status).Inc()
}

// RecordReportBuild records the time spent aggregating a payment report.
func RecordReportBuild(format string, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	reportBuilds.WithLabelValues(format).Observe(duration.Seconds())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// canonicalPath collapses per-record paths so the cardinality of the path
// label stays bounded: /api/clients/42 becomes /api/clients/:id.
func canonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	if parts[0] != "api" || len(parts) < 2 {
		return "/" + parts[0]
	}
	resource := parts[1]
	if len(parts) == 2 {
		return "/api/" + resource
	}
	// Fixed sub-resources keep their name; everything else is a record ID.
	switch parts[2] {
	case "report", "methods", "active", "expired":
		return "/api/" + resource + "/" + strings.Join(parts[2:], "/")
	case "by-client":
		return "/api/" + resource + "/by-client/:clientId"
	}
	if len(parts) >= 4 && parts[3] == "clients" {
		return "/api/" + resource + "/:id/clients/:clientId"
	}
	return "/api/" + resource + "/:id"
}
