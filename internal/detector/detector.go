package detector

import (
	"fmt"
	"sort"

	"dq-check/internal/model"
)

// Detector runs registered rules over every column of a profile.
type Detector struct {
	rules []model.Rule
}

// New returns a detector with the given rules. Rules run in registration
// order; output order is fixed by the final sort, not by rule order.
func New(rules ...model.Rule) *Detector {
	return &Detector{rules: rules}
}

// Register appends a rule.
func (d *Detector) Register(rule model.Rule) {
	d.rules = append(d.rules, rule)
}

// DefaultRules returns the stock rule set.
func DefaultRules() []model.Rule {
	return []model.Rule{
		&NonUniqueIDRule{},
		&HighNullRateRule{},
		&ConstantColumnRule{},
		&NegativeValuesRule{},
	}
}

// Detect evaluates every rule against every column profile and returns the
// findings sorted by severity descending, then column name, then issue type.
// It is deterministic: identical (profile, config) input yields identical,
// identically ordered output. A malformed profile fails fast with
// *model.PreconditionError.
func (d *Detector) Detect(profile *model.TableProfile, cfg model.DetectorConfig) ([]model.Finding, error) {
	if err := checkPreconditions(profile); err != nil {
		return nil, err
	}

	findings := []model.Finding{}
	for i := range profile.Columns {
		col := &profile.Columns[i]
		for _, rule := range d.rules {
			findings = append(findings, rule.Check(col, profile, cfg)...)
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Severity != b.Severity {
			return a.Severity > b.Severity
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.IssueType < b.IssueType
	})
	return findings, nil
}

// checkPreconditions validates the inter-component contract with the
// profiler. A violation here is a logic bug, never bad user data, so it is
// surfaced instead of tolerated.
func checkPreconditions(profile *model.TableProfile) error {
	if profile == nil {
		return &model.PreconditionError{Reason: "profile reference is nil"}
	}
	for i := range profile.Columns {
		col := &profile.Columns[i]
		switch {
		case col.RowCount < 0:
			return precondition(col, "row_count", "is negative", col.RowCount)
		case col.NullCount < 0:
			return precondition(col, "null_count", "is negative", col.NullCount)
		case col.NullCount > col.RowCount:
			return precondition(col, "null_count", "exceeds row_count", col.NullCount)
		case col.DistinctCount < 0:
			return precondition(col, "distinct_count", "is negative", col.DistinctCount)
		case col.NullRate < 0 || col.NullRate > 1:
			return precondition(col, "null_rate", "is outside [0,1]", col.NullRate)
		case col.DistinctRate < 0 || col.DistinctRate > 1:
			return precondition(col, "distinct_rate", "is outside [0,1]", col.DistinctRate)
		}
	}
	return nil
}

func precondition(col *model.ColumnProfile, field, reason string, value any) error {
	return &model.PreconditionError{
		Column: col.Name,
		Field:  field,
		Reason: fmt.Sprintf("%s (%v)", reason, value),
	}
}
