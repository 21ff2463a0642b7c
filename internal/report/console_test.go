package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dq-check/internal/model"
	"dq-check/internal/suggest"
)

func TestConsoleReporter_WithFindings(t *testing.T) {
	color.NoColor = true

	profile := &model.TableProfile{TableName: "orders", RowCount: 4, ColumnCount: 2}
	findings := []model.Finding{
		{Column: "order_id", IssueType: model.IssueNonUniqueID, Severity: model.SeverityCritical, Detail: "ID column is only 75.0% unique (expected 100%)"},
		{Column: "amount", IssueType: model.IssueNegativeValues, Severity: model.SeverityWarning, Detail: "column contains negative values (min -50.00) but looks like an amount/count field"},
	}
	suite := &suggest.Suite{
		Description: "Deterministic test suggestions derived from profile findings",
		Rationale:   "IDs should come from the sequence generator.",
		Tests: []suggest.Test{
			{Column: "order_id", Type: "unique"},
			{Column: "order_id", Type: "not_null"},
		},
	}

	var buf bytes.Buffer
	err := NewConsoleReporterTo(&buf).Report(profile, findings, suite, OutputPaths{
		Profile: "out/orders_profile.json",
		Tests:   "out/tests/orders_tests.yml",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Table: orders")
	assert.Contains(t, out, "[CRITICAL] non_unique_id")
	assert.Contains(t, out, "[WARNING] negative_values")
	assert.Contains(t, out, "found 2 issue(s)")
	assert.Contains(t, out, "Suggested tests: 2")
	assert.Contains(t, out, "not_null: 1")
	assert.Contains(t, out, "unique: 1")
	assert.Contains(t, out, "sequence generator")
	assert.Contains(t, out, "out/orders_profile.json")
	assert.Contains(t, out, "out/tests/orders_tests.yml")
}

func TestConsoleReporter_AllClear(t *testing.T) {
	color.NoColor = true

	profile := &model.TableProfile{TableName: "orders", RowCount: 4, ColumnCount: 2}

	var buf bytes.Buffer
	err := NewConsoleReporterTo(&buf).Report(profile, nil, nil, OutputPaths{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No data quality issues detected")
}
