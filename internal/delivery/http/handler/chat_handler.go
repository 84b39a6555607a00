package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medassist-pro/api/internal/pkg/utils"
	"github.com/medassist-pro/api/internal/pkg/validator"
	"github.com/medassist-pro/api/internal/usecase"
	"github.com/medassist-pro/api/internal/usecase/dto"
	"go.uber.org/zap"
)

// ChatHandler serves the AI assistant endpoint.
type ChatHandler struct {
	chatUC *usecase.ChatUseCase
	logger *zap.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatUC *usecase.ChatUseCase, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
		logger: logger,
	}
}

// Chat godoc
// @Summary Chat with the assistant
// @Description Sends one message (with optional prior context) to the assistant. When the LLM upstream is unavailable, the reply is a static help text with fallback=true.
// @Tags AI
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message and optional context"
// @Success 200 {object} utils.SuccessResponse{data=dto.ChatResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/ai/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.chatUC.Chat(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
