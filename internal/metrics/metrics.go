// Package metrics exposes Prometheus collectors for the HTTP API and the
// recommendation engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brewmatch"

// Recorder owns one registry. It implements matching.Observer.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	engineCalls  *prometheus.CounterVec
	engineResult *prometheus.HistogramVec
	matchScore   prometheus.Histogram
}

// New creates a Recorder. Runtime collectors are added when withRuntime is set.
func New(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
			},
			[]string{"method", "path"},
		),
		engineCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "engine",
				Name:      "calls_total",
				Help:      "Total number of recommendation engine calls.",
			},
			[]string{"operation"},
		),
		engineResult: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "engine",
				Name:      "results",
				Help:      "Number of items returned per engine call.",
				Buckets:   []float64{0, 1, 2, 3, 5, 10, 20, 50},
			},
			[]string{"operation"},
		),
		matchScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "bean_match_score",
				Help:      "Distribution of produced bean match scores.",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
		),
	}

	r.registry.MustRegister(r.httpRequests, r.httpDuration, r.engineCalls, r.engineResult, r.matchScore)
	if withRuntime {
		r.registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	}
	return r
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

func (r *Recorder) ObserveCall(operation string, results int) {
	r.engineCalls.WithLabelValues(operation).Inc()
	r.engineResult.WithLabelValues(operation).Observe(float64(results))
}

func (r *Recorder) ObserveScore(score int) {
	r.matchScore.Observe(float64(score))
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Instrument wraps next with request counting and timing. route names the
// path label so ids in URLs do not explode cardinality.
func (r *Recorder) Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, req)

		r.httpDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
		r.httpRequests.WithLabelValues(req.Method, route, strconv.Itoa(rec.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
