package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeCSV(t, "order_id,amount,status\n1001,-50.00,pending\n1002,,pending\n1003,10.5,NULL\n")

	table, meta, err := NewFileLoader().Load(path, "orders")
	require.NoError(t, err)

	require.Len(t, table.Columns, 3)
	assert.Equal(t, []string{"order_id", "amount", "status"}, meta.Columns)
	assert.Equal(t, "csv", meta.Format)
	assert.Equal(t, 3, meta.RowCount)
	assert.Equal(t, 3, meta.ColumnCount)
	assert.Positive(t, meta.SizeBytes)

	amount := table.Columns[1]
	assert.Equal(t, "-50.00", amount.Cells[0].Raw)
	assert.True(t, amount.Cells[1].Null)
	assert.Equal(t, "10.5", amount.Cells[2].Raw)

	status := table.Columns[2]
	assert.True(t, status.Cells[2].Null) // "NULL" token
	assert.Equal(t, 3, table.RowCount())
}

func TestLoad_NullTokens(t *testing.T) {
	path := writeCSV(t, "a\nNA\nn/a\nNaN\nnone\n\" \"\nvalue\n")

	table, _, err := NewFileLoader().Load(path, "t")
	require.NoError(t, err)

	cells := table.Columns[0].Cells
	require.Len(t, cells, 6)
	for i := 0; i < 5; i++ {
		assert.True(t, cells[i].Null, "row %d should be null", i)
	}
	assert.Equal(t, "value", cells[5].Raw)
}

func TestLoad_CSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"ragged row", "a,b\n1,2\n3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.content)
			_, _, err := NewFileLoader().Load(path, "t")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := NewFileLoader().Load(filepath.Join(t.TempDir(), "nope.csv"), "t")
	assert.Error(t, err)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.parquet")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, _, err := NewFileLoader().Load(path, "orders")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestLoad_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"order_id", "amount", "status"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{1001, -50.0, "pending"}))
	// Trailing empty cell: excelize drops it from GetRows, the loader pads
	// it back as null.
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{1002, 25.0}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, meta, err := NewFileLoader().Load(path, "orders")
	require.NoError(t, err)

	assert.Equal(t, "xlsx", meta.Format)
	assert.Equal(t, 2, meta.RowCount)
	require.Len(t, table.Columns, 3)
	assert.Equal(t, "1001", table.Columns[0].Cells[0].Raw)
	assert.True(t, table.Columns[2].Cells[1].Null)
}
