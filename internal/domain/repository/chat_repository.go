package repository

import (
	"context"

	"github.com/medassist-pro/api/internal/domain"
)

// ChatRepository talks to the LLM upstream behind the assistant endpoint.
type ChatRepository interface {
	Complete(ctx context.Context, messages []domain.ChatMessage) (*domain.ChatCompletion, error)
}
