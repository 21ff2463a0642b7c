// Package suggest maps findings onto declarative test assertions. The
// mapping is a pure function of the finding set: optional enrichment may add
// rationale text but never changes which assertions are emitted.
package suggest

import "dq-check/internal/model"

// baselineNullRate is the null rate below which a column earns a not_null
// assertion even without a finding.
const baselineNullRate = 0.05

// Test is a single assertion for the downstream test framework.
type Test struct {
	Column string
	Type   string
	Config map[string]any
}

// Suite is the full set of suggested assertions for one table.
type Suite struct {
	// Description is fixed and deterministic.
	Description string
	// Rationale optionally carries enrichment text. Display only; it has no
	// bearing on Tests.
	Rationale string
	Tests     []Test
}

// BuildSuite derives assertions from findings, then adds baseline not_null
// assertions for columns that are already nearly complete. Output order is
// deterministic: finding-driven tests in finding order, then baseline tests
// in column order, with (column, type) duplicates dropped.
func BuildSuite(profile *model.TableProfile, findings []model.Finding) Suite {
	suite := Suite{
		Description: "Deterministic test suggestions derived from profile findings",
		Tests:       []Test{},
	}
	seen := make(map[[2]string]struct{})
	add := func(t Test) {
		key := [2]string{t.Column, t.Type}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		suite.Tests = append(suite.Tests, t)
	}

	for _, f := range findings {
		switch f.IssueType {
		case model.IssueNonUniqueID:
			add(Test{Column: f.Column, Type: "unique"})
		case model.IssueHighNullRate:
			add(Test{Column: f.Column, Type: "not_null"})
		case model.IssueNegativeValues:
			add(Test{
				Column: f.Column,
				Type:   "expect_column_values_to_be_between",
				Config: map[string]any{"min_value": 0},
			})
		case model.IssueConstantColumn:
			// Advisory only; a constant column is not something a test
			// assertion can usefully pin down.
		}
	}

	for _, col := range profile.Columns {
		if col.NullRate < baselineNullRate {
			add(Test{Column: col.Name, Type: "not_null"})
		}
	}
	return suite
}
