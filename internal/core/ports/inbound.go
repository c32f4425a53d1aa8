package ports

import (
	"context"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

// ChatService is the inbound contract for one user turn of the advisory chat.
type ChatService interface {
	Complete(ctx context.Context, req domain.ChatRequest) (*domain.ChatResult, error)
}
