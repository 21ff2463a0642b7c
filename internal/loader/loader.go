// Package loader reads tabular files into in-memory tables. All I/O and
// format failures surface here, before the profiling engine sees data.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dq-check/internal/model"
)

// nullTokens are cell spellings treated as null, compared case-insensitively
// after trimming.
var nullTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"nan":  {},
	"none": {},
}

// FileLoader loads CSV and XLSX files, dispatching on the file extension.
type FileLoader struct{}

func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the file at path into a Table plus load metadata.
func (l *FileLoader) Load(path, tableName string) (*model.Table, *model.LoadMeta, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var (
		header []string
		rows   [][]string
		format string
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		header, rows, err = readCSV(path)
		format = "csv"
	case ".xlsx":
		header, rows, err = readXLSX(path)
		format = "xlsx"
	default:
		return nil, nil, fmt.Errorf("unsupported file format %q: supported formats are .csv, .xlsx", ext)
	}
	if err != nil {
		return nil, nil, err
	}

	table := buildTable(header, rows)
	meta := &model.LoadMeta{
		Path:        path,
		Format:      format,
		SizeBytes:   info.Size(),
		RowCount:    len(rows),
		ColumnCount: len(header),
		Columns:     header,
	}
	return table, meta, nil
}

// buildTable pivots row-major records into named columns. Short rows are
// padded with nulls so every column has a uniform row count.
func buildTable(header []string, rows [][]string) *model.Table {
	cols := make([]model.Column, len(header))
	for i, name := range header {
		cols[i] = model.Column{Name: name, Cells: make([]model.Cell, len(rows))}
	}
	for r, row := range rows {
		for c := range header {
			var raw string
			if c < len(row) {
				raw = strings.TrimSpace(row[c])
			}
			cols[c].Cells[r] = toCell(raw)
		}
	}
	return &model.Table{Columns: cols}
}

func toCell(raw string) model.Cell {
	if _, ok := nullTokens[strings.ToLower(raw)]; ok {
		return model.Cell{Null: true}
	}
	return model.Cell{Raw: raw}
}
