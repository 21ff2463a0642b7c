package profiler

import (
	"fmt"
	"math"
	"sort"
	"time"

	"dq-check/internal/model"
)

// sampleLimit caps how many example values a column profile carries.
const sampleLimit = 5

// Profile computes per-column statistics for a table. It is a pure function:
// the table is only read, and profiling the same table twice yields
// structurally equal profiles. A malformed table (ragged columns, duplicate
// names) fails up front with *model.InvalidInputError.
func Profile(t *model.Table, tableName string) (*model.TableProfile, error) {
	if err := validate(t); err != nil {
		return nil, err
	}

	cols := make([]model.ColumnProfile, len(t.Columns))
	for i := range t.Columns {
		cols[i] = profileColumn(&t.Columns[i])
	}

	return &model.TableProfile{
		TableName:   tableName,
		RowCount:    t.RowCount(),
		ColumnCount: len(t.Columns),
		Columns:     cols,
	}, nil
}

// validate checks the table structure once, before any scanning starts.
func validate(t *model.Table) error {
	if t == nil {
		return &model.InvalidInputError{Reason: "table reference is nil"}
	}
	seen := make(map[string]struct{}, len(t.Columns))
	rowCount := t.RowCount()
	for _, col := range t.Columns {
		if _, dup := seen[col.Name]; dup {
			return &model.InvalidInputError{Column: col.Name, Reason: "appears more than once"}
		}
		seen[col.Name] = struct{}{}
		if len(col.Cells) != rowCount {
			return &model.InvalidInputError{
				Column: col.Name,
				Reason: fmt.Sprintf("has %d rows, expected %d", len(col.Cells), rowCount),
			}
		}
	}
	return nil
}

func profileColumn(col *model.Column) model.ColumnProfile {
	p := model.ColumnProfile{
		Name:         col.Name,
		RowCount:     len(col.Cells),
		SampleValues: []string{},
	}

	nonNull := make([]string, 0, len(col.Cells))
	for _, c := range col.Cells {
		if c.Null {
			p.NullCount++
			continue
		}
		nonNull = append(nonNull, c.Raw)
	}

	p.InferredType = classify(nonNull)

	distinct := make(map[string]struct{}, len(nonNull))
	var nums []float64
	var minTime, maxTime time.Time
	for _, raw := range nonNull {
		key := canonical(raw, p.InferredType)
		if _, ok := distinct[key]; !ok {
			distinct[key] = struct{}{}
			if len(p.SampleValues) < sampleLimit {
				p.SampleValues = append(p.SampleValues, raw)
			}
		}
		switch {
		case p.InferredType.IsNumeric():
			if v, ok := parseNumber(raw); ok {
				nums = append(nums, v)
			}
		case p.InferredType == model.TypeTemporal:
			if ts, ok := parseTemporal(raw); ok {
				if minTime.IsZero() || ts.Before(minTime) {
					minTime = ts
				}
				if maxTime.IsZero() || ts.After(maxTime) {
					maxTime = ts
				}
			}
		}
	}
	p.DistinctCount = len(distinct)

	// Rates are guarded against zero denominators: a zero-row or all-null
	// column reports 0, never NaN.
	if p.RowCount > 0 {
		p.NullRate = float64(p.NullCount) / float64(p.RowCount)
	}
	if n := len(nonNull); n > 0 {
		p.DistinctRate = float64(p.DistinctCount) / float64(n)
	}

	if len(nums) > 0 {
		fillNumericStats(&p, nums)
	}
	if !minTime.IsZero() {
		p.MinTime = &minTime
		p.MaxTime = &maxTime
	}
	return p
}

func fillNumericStats(p *model.ColumnProfile, nums []float64) {
	minV, maxV := nums[0], nums[0]
	sum := 0.0
	for _, v := range nums {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
		sum += v
	}
	mean := sum / float64(len(nums))

	sorted := make([]float64, len(nums))
	copy(sorted, nums)
	sort.Float64s(sorted)
	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		median = sorted[mid]
	} else {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	// Sample standard deviation; a single value reports 0.
	std := 0.0
	if len(nums) > 1 {
		var ss float64
		for _, v := range nums {
			d := v - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(len(nums)-1))
	}

	p.Min = &minV
	p.Max = &maxV
	p.Mean = &mean
	p.Median = &median
	p.Std = &std
}
