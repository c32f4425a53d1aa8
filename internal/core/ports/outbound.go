package ports

import (
	"context"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

// PropertyCatalog is the read-only listing table fixed at process start.
type PropertyCatalog interface {
	All() []domain.Property
	ByID(id string) (domain.Property, bool)
}

// AdviceInput is the structured context an external generative model receives
// for one reply.
type AdviceInput struct {
	SystemPrompt string
	History      []domain.Message
	UserMessage  string
}

// AdviceGenerator produces the free-form reply text from an external model.
type AdviceGenerator interface {
	GenerateAdvice(ctx context.Context, input AdviceInput) (string, error)
}

// SessionStore persists session snapshots server-side. The chat core never
// depends on it being present; it only consumes and produces explicit state
// values.
type SessionStore interface {
	Save(ctx context.Context, state domain.SessionState) error
	Load(ctx context.Context, sessionID string) (*domain.SessionState, error)
}

// EventPublisher emits turn-completed events for asynchronous analytics.
type EventPublisher interface {
	PublishTurnCompleted(ctx context.Context, event domain.TurnEvent) error
}

// EventSubscriber consumes turn-completed events.
type EventSubscriber interface {
	SubscribeTurnCompleted(ctx context.Context, handler func(context.Context, domain.TurnEvent) error) error
}
