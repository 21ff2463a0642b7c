package suggest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// dbt schema document shape: version 2, one model, tests grouped per column.
type dbtDocument struct {
	Version int        `yaml:"version"`
	Models  []dbtModel `yaml:"models"`
}

type dbtModel struct {
	Name    string      `yaml:"name"`
	Columns []dbtColumn `yaml:"columns"`
}

type dbtColumn struct {
	Name  string `yaml:"name"`
	Tests []any  `yaml:"tests"`
}

// RenderYAML serializes a suite as a dbt-style schema document. Config-less
// tests render as bare strings, configured tests as single-key mappings.
func RenderYAML(tableName string, suite *Suite) ([]byte, error) {
	order := []string{}
	byColumn := map[string][]any{}
	for _, t := range suite.Tests {
		if _, ok := byColumn[t.Column]; !ok {
			order = append(order, t.Column)
		}
		var entry any = t.Type
		if len(t.Config) > 0 {
			entry = map[string]map[string]any{t.Type: t.Config}
		}
		byColumn[t.Column] = append(byColumn[t.Column], entry)
	}

	columns := make([]dbtColumn, 0, len(order))
	for _, name := range order {
		columns = append(columns, dbtColumn{Name: name, Tests: byColumn[name]})
	}
	doc := dbtDocument{
		Version: 2,
		Models:  []dbtModel{{Name: tableName, Columns: columns}},
	}
	return yaml.Marshal(doc)
}

// WriteYAML renders the suite and writes it to path.
func WriteYAML(tableName string, suite *Suite, path string) error {
	data, err := RenderYAML(tableName, suite)
	if err != nil {
		return fmt.Errorf("render tests yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
