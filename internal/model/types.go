package model

import (
	"fmt"
	"time"
)

// Cell is a single table value in raw lexical form.
type Cell struct {
	Raw  string
	Null bool
}

// Column is an ordered sequence of cells under a name.
type Column struct {
	Name  string
	Cells []Cell
}

// Table is the in-memory input to the profiler: ordered named columns with a
// uniform row count. The engine only reads it, never mutates it.
type Table struct {
	Columns []Column
}

// RowCount returns the number of rows, taken from the first column.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// LoadMeta describes where a table came from and its shape at load time.
type LoadMeta struct {
	Path        string   `json:"path"`
	Format      string   `json:"format"`
	SizeBytes   int64    `json:"size_bytes"`
	RowCount    int      `json:"row_count"`
	ColumnCount int      `json:"column_count"`
	Columns     []string `json:"columns"`
}

// DataType is the inferred logical type of a column.
type DataType string

const (
	TypeString   DataType = "string"
	TypeInteger  DataType = "integer"
	TypeFloat    DataType = "float"
	TypeBoolean  DataType = "boolean"
	TypeTemporal DataType = "temporal"
	TypeUnknown  DataType = "unknown"
)

// IsNumeric reports whether the type carries numeric statistics.
func (d DataType) IsNumeric() bool {
	return d == TypeInteger || d == TypeFloat
}

// ColumnProfile holds the computed statistics for one column.
type ColumnProfile struct {
	Name          string   `json:"name"`
	InferredType  DataType `json:"inferred_type"`
	RowCount      int      `json:"row_count"`
	NullCount     int      `json:"null_count"`
	NullRate      float64  `json:"null_rate"`
	DistinctCount int      `json:"distinct_count"`
	DistinctRate  float64  `json:"distinct_rate"`

	// Numeric statistics, set only for integer/float columns with at least
	// one non-null value.
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Mean   *float64 `json:"mean,omitempty"`
	Median *float64 `json:"median,omitempty"`
	Std    *float64 `json:"std,omitempty"`

	// Temporal bounds, set only for temporal columns.
	MinTime *time.Time `json:"min_time,omitempty"`
	MaxTime *time.Time `json:"max_time,omitempty"`

	// Up to five first-seen distinct non-null values, for reporting.
	SampleValues []string `json:"sample_values"`
}

// TableProfile is the immutable result of profiling one table.
type TableProfile struct {
	TableName   string          `json:"table_name"`
	RowCount    int             `json:"row_count"`
	ColumnCount int             `json:"column_count"`
	Columns     []ColumnProfile `json:"columns"`
}

// Severity ranks findings. The numeric order is the sort order.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "CRITICAL"
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	default:
		return "INFO"
	}
}

// MarshalText lets severities serialize as their display names.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a display name back into a severity.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "CRITICAL":
		*s = SeverityCritical
	case "ERROR":
		*s = SeverityError
	case "WARNING":
		*s = SeverityWarning
	case "INFO":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// IssueType identifies the rule that produced a finding.
type IssueType string

const (
	IssueNonUniqueID    IssueType = "non_unique_id"
	IssueHighNullRate   IssueType = "high_null_rate"
	IssueConstantColumn IssueType = "constant_column"
	IssueNegativeValues IssueType = "negative_values"
)

// Finding is one detected anomaly instance. Column is empty for table-level
// findings.
type Finding struct {
	Column      string    `json:"column"`
	IssueType   IssueType `json:"issue_type"`
	Severity    Severity  `json:"severity"`
	MetricValue float64   `json:"metric_value"`
	Detail      string    `json:"detail"`
}

// DetectorConfig holds the rule thresholds. It is built once by the caller
// and passed explicitly into every detection call.
type DetectorConfig struct {
	// HighNullThreshold is the null-rate fraction above which a column is
	// flagged. Comparison is strictly greater-than.
	HighNullThreshold float64
	// ConstantThreshold is the maximum distinct count still considered
	// constant.
	ConstantThreshold int
	// IDUniquenessThreshold is the minimum distinct rate required of
	// ID-looking columns.
	IDUniquenessThreshold float64
}

// DefaultDetectorConfig returns the stock thresholds.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		HighNullThreshold:     0.30,
		ConstantThreshold:     1,
		IDUniquenessThreshold: 1.0,
	}
}
