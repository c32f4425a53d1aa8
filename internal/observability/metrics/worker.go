package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	eventsTotal     *prometheus.CounterVec
	eventDuration   *prometheus.HistogramVec
	eventsInFlight  prometheus.Gauge
	eventLag        *prometheus.HistogramVec
	turnsByPhase    *prometheus.CounterVec
	generatedTurns  *prometheus.CounterVec
	recommendations *prometheus.HistogramVec
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	eventsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "worker",
			Name:      "turn_events_total",
			Help:      "Total processed turn events by status.",
		},
		[]string{"service", "status"},
	)
	eventDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Subsystem: "worker",
			Name:      "turn_event_duration_seconds",
			Help:      "Turn event processing duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	eventsInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "advisor",
			Subsystem: "worker",
			Name:      "turn_events_in_flight",
			Help:      "Number of in-flight turn event handlers.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	eventLag := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Subsystem: "worker",
			Name:      "turn_event_lag_seconds",
			Help:      "Delay between turn completion and event processing start.",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"service"},
	)
	turnsByPhase := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "analytics",
			Name:      "turns_total",
			Help:      "Total observed turns by conversation phase.",
		},
		[]string{"service", "phase"},
	)
	generatedTurns := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Subsystem: "analytics",
			Name:      "generated_turns_total",
			Help:      "Total observed turns answered by the external model.",
		},
		[]string{"service"},
	)
	recommendations := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Subsystem: "analytics",
			Name:      "recommendations_per_turn",
			Help:      "Distribution of recommendations per observed turn.",
			Buckets:   []float64{0, 1, 2, 3, 5},
		},
		[]string{"service"},
	)

	registry.MustRegister(
		eventsTotal,
		eventDuration,
		eventsInFlight,
		eventLag,
		turnsByPhase,
		generatedTurns,
		recommendations,
	)

	return &WorkerMetrics{
		registry:        registry,
		eventsTotal:     eventsTotal,
		eventDuration:   eventDuration,
		eventsInFlight:  eventsInFlight,
		eventLag:        eventLag,
		turnsByPhase:    turnsByPhase,
		generatedTurns:  generatedTurns,
		recommendations: recommendations,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartEvent() {
	m.eventsInFlight.Inc()
}

func (m *WorkerMetrics) FinishEvent(service string, duration time.Duration, err error) {
	m.eventsInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.eventsTotal.WithLabelValues(service, status).Inc()
	m.eventDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}

func (m *WorkerMetrics) ObserveEventLag(service string, lag time.Duration) {
	if lag < 0 {
		return
	}
	m.eventLag.WithLabelValues(service).Observe(lag.Seconds())
}

func (m *WorkerMetrics) ObserveTurn(service, phase string, generated bool, recommendations int) {
	m.turnsByPhase.WithLabelValues(service, phase).Inc()
	if generated {
		m.generatedTurns.WithLabelValues(service).Inc()
	}
	m.recommendations.WithLabelValues(service).Observe(float64(recommendations))
}
