package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/medassist-pro/api/internal/config"
	"github.com/medassist-pro/api/internal/domain"
	"github.com/medassist-pro/api/internal/domain/repository"
	"github.com/medassist-pro/api/internal/pkg/errors"
	"go.uber.org/zap"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

// NewClient creates an OpenAI chat-completions client.
func NewClient(cfg *config.OpenAIConfig, logger *zap.Logger) repository.ChatRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		logger:      logger,
	}
}

type completionRequest struct {
	Model            string               `json:"model"`
	Messages         []domain.ChatMessage `json:"messages"`
	MaxTokens        int                  `json:"max_tokens"`
	Temperature      float64              `json:"temperature"`
	PresencePenalty  float64              `json:"presence_penalty"`
	FrequencyPenalty float64              `json:"frequency_penalty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage *domain.ChatUsage `json:"usage"`
}

// Complete sends the conversation to the chat-completions endpoint and
// returns the first choice.
func (c *client) Complete(ctx context.Context, messages []domain.ChatMessage) (*domain.ChatCompletion, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("openai API key is not set: %w", errors.ErrMissingConfig)
	}

	payload := completionRequest{
		Model:            c.model,
		Messages:         messages,
		MaxTokens:        c.maxTokens,
		Temperature:      c.temperature,
		PresencePenalty:  0.1,
		FrequencyPenalty: 0.1,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("OpenAI request failed", zap.Error(err))
		return nil, fmt.Errorf("openai request failed: %v: %w", err, errors.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenAI API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(respBody)))
		return nil, fmt.Errorf("openai API error: status %d: %w", resp.StatusCode, errors.ErrUpstreamUnavailable)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		c.logger.Error("Failed to decode OpenAI response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode openai response: %v: %w", err, errors.ErrUpstreamUnavailable)
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai returned no choices: %w", errors.ErrUpstreamUnavailable)
	}

	return &domain.ChatCompletion{
		Content: completion.Choices[0].Message.Content,
		Usage:   completion.Usage,
	}, nil
}
