package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"

	"dq-check/internal/model"
	"dq-check/internal/suggest"
)

// OutputPaths lists the artifact files a run produced.
type OutputPaths struct {
	Profile string
	Tests   string
}

// ConsoleReporter renders the run summary to a terminal.
type ConsoleReporter struct {
	out io.Writer
}

func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

// NewConsoleReporterTo writes to the given writer instead of stdout.
func NewConsoleReporterTo(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// Report prints the profile summary, the findings ranked by severity, the
// suggested tests, and the produced file paths.
func (r *ConsoleReporter) Report(profile *model.TableProfile, findings []model.Finding, suite *suggest.Suite, paths OutputPaths) error {
	fmt.Fprintf(r.out, "%s\n", color.New(color.Bold).Sprintf("Table: %s", profile.TableName))
	fmt.Fprintf(r.out, "  Rows: %d  Columns: %d\n\n", profile.RowCount, profile.ColumnCount)

	if len(findings) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✔ No data quality issues detected."))
	} else {
		for _, f := range findings {
			fmt.Fprintf(r.out, "%s: [%s] %s %s\n",
				f.Column,
				severityColor(f.Severity).Sprint(f.Severity),
				f.IssueType,
				f.Detail)
		}
		fmt.Fprintf(r.out, "\n%s found %d issue(s).\n", color.RedString("✘"), len(findings))
	}
	fmt.Fprintln(r.out)

	if suite != nil {
		fmt.Fprintf(r.out, "Suggested tests: %d\n", len(suite.Tests))
		counts := countByType(suite.Tests)
		types := make([]string, 0, len(counts))
		for testType := range counts {
			types = append(types, testType)
		}
		sort.Strings(types)
		for _, testType := range types {
			fmt.Fprintf(r.out, "  • %s: %d\n", testType, counts[testType])
		}
		if suite.Rationale != "" {
			fmt.Fprintf(r.out, "\n%s\n%s\n", color.New(color.Bold).Sprint("Rationale:"), suite.Rationale)
		}
		fmt.Fprintln(r.out)
	}

	if paths.Profile != "" {
		fmt.Fprintf(r.out, "Profile JSON: %s\n", color.CyanString(paths.Profile))
	}
	if paths.Tests != "" {
		fmt.Fprintf(r.out, "Tests YAML:   %s\n", color.CyanString(paths.Tests))
	}
	return nil
}

func severityColor(s model.Severity) *color.Color {
	switch s {
	case model.SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case model.SeverityError:
		return color.New(color.FgRed)
	case model.SeverityWarning:
		return color.New(color.FgYellow, color.Bold)
	case model.SeverityInfo:
		return color.New(color.FgBlue, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func countByType(tests []suggest.Test) map[string]int {
	counts := make(map[string]int, len(tests))
	for _, t := range tests {
		counts[t.Type]++
	}
	return counts
}
