// Package llm provides the optional natural-language enrichment capability.
// The rest of the pipeline works identically with it absent; it only adds
// rationale text to the report.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"dq-check/internal/model"
)

const systemPrompt = `You are a data quality expert reviewing profiling results for a database table.
Given the table profile and the detected issues, explain in a short paragraph per issue why it matters
and what remediation to consider. Do not propose new issues and do not restate the statistics verbatim.`

// NewEnricher parses a "provider:model" selector and returns the matching
// enricher. An empty selector returns a disabled enricher rather than an
// error, so callers need no special case for running without a key. API keys
// are read from the environment at construction time and validated
// immediately.
func NewEnricher(providerModel string, logger *zap.Logger) (model.Enricher, error) {
	if providerModel == "" {
		return Disabled{}, nil
	}
	parts := strings.SplitN(providerModel, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid model format %q: expected provider:model (e.g. openai:gpt-4o-mini)", providerModel)
	}
	switch parts[0] {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, errors.New("OPENAI_API_KEY environment variable not set")
		}
		return newOpenAIEnricher(apiKey, parts[1], logger), nil
	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, errors.New("ANTHROPIC_API_KEY environment variable not set")
		}
		return newAnthropicEnricher(apiKey, parts[1], logger), nil
	default:
		return nil, fmt.Errorf("unknown provider %q: supported providers are openai, anthropic", parts[0])
	}
}

// Disabled is the no-capability enricher.
type Disabled struct{}

func (Disabled) Available() bool { return false }

func (Disabled) Suggest(context.Context, *model.TableProfile, []model.Finding) (string, error) {
	return "", errors.New("enrichment is not available")
}

// buildPrompt renders the profile and findings for the model.
func buildPrompt(profile *model.TableProfile, findings []model.Finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table: %s\n", profile.TableName)
	fmt.Fprintf(&b, "Rows: %d\n", profile.RowCount)
	fmt.Fprintf(&b, "Columns: %d\n", profile.ColumnCount)
	b.WriteString("\nColumn profiles:\n")
	for _, col := range profile.Columns {
		fmt.Fprintf(&b, "- %s (%s)\n", col.Name, col.InferredType)
		fmt.Fprintf(&b, "  null: %.1f%%, distinct: %d (%.1f%%)\n",
			col.NullRate*100, col.DistinctCount, col.DistinctRate*100)
		if col.Min != nil && col.Max != nil {
			fmt.Fprintf(&b, "  range: [%g, %g]\n", *col.Min, *col.Max)
		}
	}
	if len(findings) > 0 {
		b.WriteString("\nDetected issues:\n")
		for _, f := range findings {
			fmt.Fprintf(&b, "- %s: %s (%s) - %s\n", f.Column, f.IssueType, f.Severity, f.Detail)
		}
	}
	return b.String()
}
