package bootstrap

import (
	"context"
	"fmt"

	"github.com/fudosan-labs/estate-advisor/internal/catalog"
	"github.com/fudosan-labs/estate-advisor/internal/config"
	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
	"github.com/fudosan-labs/estate-advisor/internal/core/matching"
	"github.com/fudosan-labs/estate-advisor/internal/core/ports"
	"github.com/fudosan-labs/estate-advisor/internal/core/usecase"
	"github.com/fudosan-labs/estate-advisor/internal/infrastructure/llm/openaichat"
	"github.com/fudosan-labs/estate-advisor/internal/infrastructure/queue/nats"
	"github.com/fudosan-labs/estate-advisor/internal/infrastructure/repository/postgres"
	"github.com/fudosan-labs/estate-advisor/internal/infrastructure/resilience"
)

// App wires the advisory service. Postgres, NATS, and the generative model
// are each optional; the service degrades to a stateless scripted advisor
// when none are configured.
type App struct {
	Config config.Config

	Catalog ports.PropertyCatalog
	ChatUC  ports.ChatService
	Queue   *nats.Queue

	GeneratorEnabled bool

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	listings, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	closers := make([]func(), 0, 2)

	var sessions ports.SessionStore
	if cfg.PostgresDSN != "" {
		db, err := postgres.OpenDB(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		repo := postgres.NewSessionRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ensure schema: %w", err)
		}
		sessions = repo
		closers = append(closers, func() { _ = db.Close() })
	}

	var queue *nats.Queue
	var events ports.EventPublisher
	if cfg.NATSURL != "" {
		queue, err = nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
			ResilienceExecutor: executor,
		})
		if err != nil {
			runClosers(closers)
			return nil, fmt.Errorf("init message queue: %w", err)
		}
		events = queue
		closers = append(closers, queue.Close)
	}

	var generator ports.AdviceGenerator
	if cfg.OpenAIAPIKey != "" {
		client := openaichat.New(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
		generator = openaichat.NewGenerator(client, executor)
	}

	chatUC := usecase.NewChatUseCase(
		matching.New(listings),
		generator,
		sessions,
		events,
		domain.ChatLimits{
			HistoryWindow:  cfg.ChatHistoryWindow,
			RecommendLimit: cfg.ChatRecommendLimit,
		},
	)

	return &App{
		Config:           cfg,
		Catalog:          listings,
		ChatUC:           chatUC,
		Queue:            queue,
		GeneratorEnabled: generator != nil,

		closeFn: func() { runClosers(closers) },
	}, nil
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Default(), nil
}

func runClosers(closers []func()) {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
