package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dq-check/internal/model"
)

func TestNewEnricher_EmptySelectorDisables(t *testing.T) {
	enricher, err := NewEnricher("", zap.NewNop())
	require.NoError(t, err)
	assert.False(t, enricher.Available())

	_, err = enricher.Suggest(context.Background(), &model.TableProfile{}, nil)
	assert.Error(t, err)
}

func TestNewEnricher_SelectorErrors(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	tests := []struct {
		name     string
		selector string
	}{
		{"missing model part", "openai"},
		{"empty provider", ":gpt-4o-mini"},
		{"empty model", "openai:"},
		{"unknown provider", "cohere:command"},
		{"openai without key", "openai:gpt-4o-mini"},
		{"anthropic without key", "anthropic:claude-sonnet-4-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEnricher(tt.selector, zap.NewNop())
			assert.Error(t, err)
		})
	}
}

func TestNewEnricher_WithKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	for _, selector := range []string{"openai:gpt-4o-mini", "anthropic:claude-sonnet-4-5"} {
		enricher, err := NewEnricher(selector, zap.NewNop())
		require.NoError(t, err)
		assert.True(t, enricher.Available())
	}
}

func TestBuildPrompt(t *testing.T) {
	profile := &model.TableProfile{
		TableName:   "orders",
		RowCount:    4,
		ColumnCount: 2,
		Columns: []model.ColumnProfile{
			{Name: "order_id", InferredType: model.TypeInteger, DistinctCount: 3, DistinctRate: 0.75, Min: ptr(1001), Max: ptr(1003)},
			{Name: "status", InferredType: model.TypeString, NullRate: 0.25, DistinctCount: 1, DistinctRate: 1.0 / 3},
		},
	}
	findings := []model.Finding{
		{Column: "order_id", IssueType: model.IssueNonUniqueID, Severity: model.SeverityCritical, Detail: "not unique"},
	}

	prompt := buildPrompt(profile, findings)
	assert.Contains(t, prompt, "Table: orders")
	assert.Contains(t, prompt, "order_id (integer)")
	assert.Contains(t, prompt, "range: [1001, 1003]")
	assert.Contains(t, prompt, "distinct: 3 (75.0%)")
	assert.Contains(t, prompt, "non_unique_id (CRITICAL)")
}

func ptr(v float64) *float64 { return &v }
