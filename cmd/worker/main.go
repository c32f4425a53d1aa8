package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fudosan-labs/estate-advisor/internal/config"
	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
	"github.com/fudosan-labs/estate-advisor/internal/core/ports"
	"github.com/fudosan-labs/estate-advisor/internal/infrastructure/queue/nats"
	"github.com/fudosan-labs/estate-advisor/internal/observability/logging"
	"github.com/fudosan-labs/estate-advisor/internal/observability/metrics"
)

// The worker consumes turn-completed events and turns them into Prometheus
// analytics, exposed on its own metrics port.
func main() {
	cfg := config.Load()
	slog.SetDefault(logging.NewJSONLogger("worker", cfg.LogLevel))

	if cfg.NATSURL == "" {
		log.Fatalf("worker requires NATS_URL")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue, err := nats.New(cfg.NATSURL, cfg.NATSSubject)
	if err != nil {
		log.Fatalf("init message queue: %v", err)
	}
	defer queue.Close()

	workerMetrics := metrics.NewWorkerMetrics("worker")
	metricsServer := &http.Server{
		Addr:    ":" + cfg.WorkerMetricsPort,
		Handler: workerMetrics.Handler(),
	}
	go func() {
		log.Printf("worker metrics listening on :%s", cfg.WorkerMetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("worker metrics server error: %v", err)
		}
	}()

	var subscriber ports.EventSubscriber = queue

	log.Printf("worker subscribed to %s", cfg.NATSSubject)
	err = subscriber.SubscribeTurnCompleted(ctx, func(handlerCtx context.Context, event domain.TurnEvent) error {
		start := time.Now()
		workerMetrics.StartEvent()
		if !event.CompletedAt.IsZero() {
			workerMetrics.ObserveEventLag("worker", start.Sub(event.CompletedAt))
		}

		workerMetrics.ObserveTurn("worker", string(event.Phase), event.Generated, event.Recommendations)
		slog.Info("turn_event",
			"session_id", event.SessionID,
			"phase", event.Phase,
			"generated", event.Generated,
			"extracted_fields", event.ExtractedCount,
			"recommendations", event.Recommendations,
			"top_match_score", event.TopMatchScore,
		)

		workerMetrics.FinishEvent("worker", time.Since(start), nil)
		return nil
	})
	if err != nil {
		log.Fatalf("worker subscribe error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("worker metrics shutdown error: %v", err)
	}
}
