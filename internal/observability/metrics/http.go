package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	chatTurnsTotal       *prometheus.CounterVec
	chatDuration         *prometheus.HistogramVec
	extractedFieldsTotal *prometheus.CounterVec
	recommendationsCount *prometheus.HistogramVec
	matchScore           *prometheus.HistogramVec
	generatorFallbacks   *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "advisor",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	chatTurnsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total completed chat turns by phase and reply mode.",
		},
		[]string{"service", "phase", "mode"},
	)
	chatDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Subsystem: "chat",
			Name:      "turn_duration_seconds",
			Help:      "Chat turn duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "phase"},
	)
	extractedFieldsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "chat",
			Name:      "extracted_fields_total",
			Help:      "Total profile fields extracted from user messages.",
		},
		[]string{"service"},
	)
	recommendationsCount := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Subsystem: "matching",
			Name:      "recommendations",
			Help:      "Distribution of recommendations returned per turn.",
			Buckets:   []float64{0, 1, 2, 3, 5},
		},
		[]string{"service"},
	)
	matchScore := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Subsystem: "matching",
			Name:      "top_match_score",
			Help:      "Distribution of the best match score per recommending turn.",
			Buckets:   []float64{0, 20, 40, 60, 80, 90, 100},
		},
		[]string{"service"},
	)
	generatorFallbacks := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "llm",
			Name:      "fallbacks_total",
			Help:      "Total turns that fell back to the scripted reply.",
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		chatTurnsTotal,
		chatDuration,
		extractedFieldsTotal,
		recommendationsCount,
		matchScore,
		generatorFallbacks,
	)

	return &HTTPServerMetrics{
		registry:             registry,
		requestTotal:         requestTotal,
		requestDuration:      requestDuration,
		requestInFlight:      requestInFlight,
		chatTurnsTotal:       chatTurnsTotal,
		chatDuration:         chatDuration,
		extractedFieldsTotal: extractedFieldsTotal,
		recommendationsCount: recommendationsCount,
		matchScore:           matchScore,
		generatorFallbacks:   generatorFallbacks,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/properties/") && strings.HasSuffix(path, "/analysis"):
		return "/v1/properties/{property_id}/analysis"
	case strings.HasPrefix(path, "/v1/properties/"):
		return "/v1/properties/{property_id}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordChatTurn(service, phase string, generated bool, duration time.Duration) {
	mode := "scripted"
	if generated {
		mode = "generated"
	}
	m.chatTurnsTotal.WithLabelValues(service, phase, mode).Inc()
	m.chatDuration.WithLabelValues(service, phase).Observe(duration.Seconds())
}

func (m *HTTPServerMetrics) RecordExtractedFields(service string, fields int) {
	if fields <= 0 {
		return
	}
	m.extractedFieldsTotal.WithLabelValues(service).Add(float64(fields))
}

func (m *HTTPServerMetrics) RecordRecommendations(service string, count, topScore int) {
	m.recommendationsCount.WithLabelValues(service).Observe(float64(count))
	if count > 0 {
		m.matchScore.WithLabelValues(service).Observe(float64(topScore))
	}
}

func (m *HTTPServerMetrics) RecordGeneratorFallback(service string) {
	m.generatorFallbacks.WithLabelValues(service).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
