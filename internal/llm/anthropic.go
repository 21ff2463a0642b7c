package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"

	"dq-check/internal/model"
)

const anthropicMaxTokens = 1024

type anthropicEnricher struct {
	client *anthropic.Client
	model  string
	logger *zap.Logger
}

func newAnthropicEnricher(apiKey, modelName string, logger *zap.Logger) *anthropicEnricher {
	return &anthropicEnricher{
		client: anthropic.NewClient(apiKey),
		model:  modelName,
		logger: logger.Named("anthropic"),
	}
}

func (e *anthropicEnricher) Available() bool { return true }

func (e *anthropicEnricher) Suggest(ctx context.Context, profile *model.TableProfile, findings []model.Finding) (string, error) {
	prompt := buildPrompt(profile, findings)
	start := time.Now()

	resp, err := e.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(e.model),
		System:    systemPrompt,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(prompt),
		},
	})
	if err != nil {
		e.logger.Error("enrichment request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("anthropic completion: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != nil {
			e.logger.Info("enrichment request completed",
				zap.Duration("elapsed", time.Since(start)))
			return *block.Text, nil
		}
	}
	return "", errors.New("anthropic completion: no text content in response")
}
