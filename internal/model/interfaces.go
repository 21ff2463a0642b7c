package model

import "context"

// Rule is a single detection predicate evaluated against every column
// profile. Rules are independent and never short-circuit each other.
type Rule interface {
	// Name returns the unique identifier of the rule.
	Name() string
	// Check examines one column profile in the context of the whole table
	// profile and returns any findings.
	Check(col *ColumnProfile, profile *TableProfile, cfg DetectorConfig) []Finding
}

// Loader reads a tabular file into a Table. All I/O failure handling happens
// here, before the engine sees data.
type Loader interface {
	Load(path, tableName string) (*Table, *LoadMeta, error)
}

// Enricher is the optional natural-language capability. When absent or
// failing it only costs the rationale text; the deterministic pipeline output
// never depends on it.
type Enricher interface {
	// Available reports whether the capability can be invoked.
	Available() bool
	// Suggest produces human-readable rationale for the given findings.
	Suggest(ctx context.Context, profile *TableProfile, findings []Finding) (string, error)
}
