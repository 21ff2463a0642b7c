package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"dq-check/internal/model"
)

func sampleProfile() *model.TableProfile {
	return &model.TableProfile{
		TableName:   "orders",
		RowCount:    10,
		ColumnCount: 3,
		Columns: []model.ColumnProfile{
			{Name: "order_id", NullRate: 0},
			{Name: "amount", NullRate: 0.02},
			{Name: "customer_name", NullRate: 0.4},
		},
	}
}

func sampleFindings() []model.Finding {
	return []model.Finding{
		{Column: "order_id", IssueType: model.IssueNonUniqueID, Severity: model.SeverityCritical},
		{Column: "customer_name", IssueType: model.IssueHighNullRate, Severity: model.SeverityWarning},
		{Column: "amount", IssueType: model.IssueNegativeValues, Severity: model.SeverityWarning},
		{Column: "amount", IssueType: model.IssueConstantColumn, Severity: model.SeverityInfo},
	}
}

func TestBuildSuite_Mapping(t *testing.T) {
	suite := BuildSuite(sampleProfile(), sampleFindings())

	require.Equal(t, []Test{
		{Column: "order_id", Type: "unique"},
		{Column: "customer_name", Type: "not_null"},
		{Column: "amount", Type: "expect_column_values_to_be_between", Config: map[string]any{"min_value": 0}},
		// Baseline not_null for nearly complete columns.
		{Column: "order_id", Type: "not_null"},
		{Column: "amount", Type: "not_null"},
	}, suite.Tests)
}

func TestBuildSuite_Deterministic(t *testing.T) {
	first := BuildSuite(sampleProfile(), sampleFindings())
	second := BuildSuite(sampleProfile(), sampleFindings())
	require.Equal(t, first, second)
}

func TestBuildSuite_DependsOnlyOnFindings(t *testing.T) {
	// Enrichment text must not alter which assertions are emitted.
	suite := BuildSuite(sampleProfile(), sampleFindings())
	enriched := BuildSuite(sampleProfile(), sampleFindings())
	enriched.Rationale = "model-written rationale"
	assert.Equal(t, suite.Tests, enriched.Tests)
}

func TestBuildSuite_Dedupes(t *testing.T) {
	profile := &model.TableProfile{
		TableName: "t",
		Columns:   []model.ColumnProfile{{Name: "user_id", NullRate: 0}},
	}
	findings := []model.Finding{
		{Column: "user_id", IssueType: model.IssueNonUniqueID},
		{Column: "user_id", IssueType: model.IssueNonUniqueID},
	}

	suite := BuildSuite(profile, findings)
	assert.Equal(t, []Test{
		{Column: "user_id", Type: "unique"},
		{Column: "user_id", Type: "not_null"},
	}, suite.Tests)
}

func TestBuildSuite_NoFindings(t *testing.T) {
	profile := &model.TableProfile{
		TableName: "t",
		Columns:   []model.ColumnProfile{{Name: "notes", NullRate: 0.5}},
	}
	suite := BuildSuite(profile, nil)
	assert.Empty(t, suite.Tests)
	assert.NotEmpty(t, suite.Description)
}

func TestRenderYAML(t *testing.T) {
	suite := BuildSuite(sampleProfile(), sampleFindings())
	data, err := RenderYAML("orders", &suite)
	require.NoError(t, err)

	var doc struct {
		Version int `yaml:"version"`
		Models  []struct {
			Name    string `yaml:"name"`
			Columns []struct {
				Name  string `yaml:"name"`
				Tests []any  `yaml:"tests"`
			} `yaml:"columns"`
		} `yaml:"models"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, 2, doc.Version)
	require.Len(t, doc.Models, 1)
	assert.Equal(t, "orders", doc.Models[0].Name)

	cols := doc.Models[0].Columns
	require.Len(t, cols, 3)
	assert.Equal(t, "order_id", cols[0].Name)
	assert.Equal(t, []any{"unique", "not_null"}, cols[0].Tests)
	assert.Equal(t, "customer_name", cols[1].Name)
	assert.Equal(t, []any{"not_null"}, cols[1].Tests)

	require.Len(t, cols[2].Tests, 2)
	ranged, ok := cols[2].Tests[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, ranged, "expect_column_values_to_be_between")
}
