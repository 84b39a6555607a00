package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/domain/repository"
	"github.com/medassist-pro/api/internal/usecase/dto"
)

const defaultSystemPrompt = "You are a helpful AI assistant focused on health and medical topics."

// chatContextWindow bounds how many prior turns are forwarded upstream.
const chatContextWindow = 8

const chatFallbackResponse = "I'm having trouble connecting to my AI services right now. For immediate help:\n\n" +
	"Emergency: Call 108\n" +
	"Find hospitals: Use our Hospital Locator\n" +
	"Check symptoms: Visit our Dashboard\n\n" +
	"Please try your question again in a moment."

// ChatUseCase proxies assistant conversations to the LLM upstream and
// degrades to a static help reply when it is unavailable.
type ChatUseCase struct {
	chatRepo repository.ChatRepository
	logger   *zap.Logger
}

// NewChatUseCase creates a new ChatUseCase.
func NewChatUseCase(chatRepo repository.ChatRepository, logger *zap.Logger) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
		logger:   logger,
	}
}

// Chat sends one turn with bounded prior context. Upstream failures are
// absorbed into a visible fallback reply, never a 5xx.
func (uc *ChatUseCase) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	systemPrompt := req.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	history := req.Context
	if len(history) > chatContextWindow {
		history = history[len(history)-chatContextWindow:]
	}

	messages := make([]domain.ChatMessage, 0, len(history)+2)
	messages = append(messages, domain.ChatMessage{Role: "system", Content: systemPrompt})
	for _, m := range history {
		messages = append(messages, domain.ChatMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, domain.ChatMessage{Role: "user", Content: req.Message})

	completion, err := uc.chatRepo.Complete(ctx, messages)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		uc.logger.Warn("Chat upstream unavailable, serving fallback reply", zap.Error(err))
		return &dto.ChatResponse{
			Response: chatFallbackResponse,
			Fallback: true,
		}, nil
	}

	return &dto.ChatResponse{
		Response: completion.Content,
		Usage:    completion.Usage,
	}, nil
}
