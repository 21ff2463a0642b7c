package detector

import (
	"fmt"
	"strings"

	"dq-check/internal/model"
)

// amountIndicators mark columns expected to hold non-negative quantities.
// Name matching is a case-insensitive substring test: an intentional
// approximation, false positives and negatives are accepted rather than
// silently patched.
var amountIndicators = []string{"amount", "count", "price", "qty", "quantity"}

// NonUniqueIDRule flags ID-looking columns whose distinct rate falls short of
// the configured uniqueness threshold.
type NonUniqueIDRule struct{}

func (r *NonUniqueIDRule) Name() string { return "non_unique_id" }

func (r *NonUniqueIDRule) Check(col *model.ColumnProfile, profile *model.TableProfile, cfg model.DetectorConfig) []model.Finding {
	if col.RowCount == 0 || !isIDColumn(col.Name, profile.TableName) {
		return nil
	}
	if col.DistinctRate >= cfg.IDUniquenessThreshold {
		return nil
	}
	pct := col.DistinctRate * 100
	return []model.Finding{{
		Column:      col.Name,
		IssueType:   model.IssueNonUniqueID,
		Severity:    model.SeverityCritical,
		MetricValue: pct,
		Detail: fmt.Sprintf("ID column is only %.1f%% unique (expected %.0f%%)",
			pct, cfg.IDUniquenessThreshold*100),
	}}
}

func isIDColumn(name, tableName string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "id") ||
		lower == strings.ToLower(tableName)+"_id"
}

// HighNullRateRule flags columns whose null rate strictly exceeds the
// threshold. Past twice the threshold the severity escalates from WARNING to
// ERROR.
type HighNullRateRule struct{}

func (r *HighNullRateRule) Name() string { return "high_null_rate" }

func (r *HighNullRateRule) Check(col *model.ColumnProfile, profile *model.TableProfile, cfg model.DetectorConfig) []model.Finding {
	if col.NullRate <= cfg.HighNullThreshold {
		return nil
	}
	severity := model.SeverityWarning
	if col.NullRate > 2*cfg.HighNullThreshold {
		severity = model.SeverityError
	}
	pct := col.NullRate * 100
	return []model.Finding{{
		Column:      col.Name,
		IssueType:   model.IssueHighNullRate,
		Severity:    severity,
		MetricValue: pct,
		Detail: fmt.Sprintf("column has %.1f%% null values (threshold %.1f%%)",
			pct, cfg.HighNullThreshold*100),
	}}
}

// ConstantColumnRule flags columns with at most ConstantThreshold distinct
// values. Zero-row tables are excluded by the row_count guard.
type ConstantColumnRule struct{}

func (r *ConstantColumnRule) Name() string { return "constant_column" }

func (r *ConstantColumnRule) Check(col *model.ColumnProfile, profile *model.TableProfile, cfg model.DetectorConfig) []model.Finding {
	if col.RowCount == 0 || col.DistinctCount > cfg.ConstantThreshold {
		return nil
	}
	return []model.Finding{{
		Column:      col.Name,
		IssueType:   model.IssueConstantColumn,
		Severity:    model.SeverityInfo,
		MetricValue: float64(col.DistinctCount),
		Detail:      fmt.Sprintf("column has only %d distinct value(s)", col.DistinctCount),
	}}
}

// NegativeValuesRule flags numeric amount/count-looking columns containing
// negative values.
type NegativeValuesRule struct{}

func (r *NegativeValuesRule) Name() string { return "negative_values" }

func (r *NegativeValuesRule) Check(col *model.ColumnProfile, profile *model.TableProfile, cfg model.DetectorConfig) []model.Finding {
	if !col.InferredType.IsNumeric() || !isAmountColumn(col.Name) {
		return nil
	}
	if col.Min == nil || *col.Min >= 0 {
		return nil
	}
	return []model.Finding{{
		Column:      col.Name,
		IssueType:   model.IssueNegativeValues,
		Severity:    model.SeverityWarning,
		MetricValue: *col.Min,
		Detail: fmt.Sprintf("column contains negative values (min %.2f) but looks like an amount/count field",
			*col.Min),
	}}
}

func isAmountColumn(name string) bool {
	lower := strings.ToLower(name)
	for _, ind := range amountIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}
