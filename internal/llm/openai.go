package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"dq-check/internal/model"
)

type openaiEnricher struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func newOpenAIEnricher(apiKey, modelName string, logger *zap.Logger) *openaiEnricher {
	return &openaiEnricher{
		client: openai.NewClient(apiKey),
		model:  modelName,
		logger: logger.Named("openai"),
	}
}

func (e *openaiEnricher) Available() bool { return true }

func (e *openaiEnricher) Suggest(ctx context.Context, profile *model.TableProfile, findings []model.Finding) (string, error) {
	prompt := buildPrompt(profile, findings)
	start := time.Now()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		e.logger.Error("enrichment request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai completion: no choices in response")
	}

	e.logger.Info("enrichment request completed",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))
	return resp.Choices[0].Message.Content, nil
}
