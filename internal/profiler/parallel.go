package profiler

import (
	"sync"

	"dq-check/internal/model"
)

// ProfileParallel profiles columns across a bounded worker pool. Column
// computations share no mutable state, so fan-out is safe; results are
// written to index-addressed slots so the output order always matches the
// source column order regardless of completion order.
func ProfileParallel(t *model.Table, tableName string, workers int) (*model.TableProfile, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	if workers <= 1 || len(t.Columns) <= 1 {
		return Profile(t, tableName)
	}
	if workers > len(t.Columns) {
		workers = len(t.Columns)
	}

	cols := make([]model.ColumnProfile, len(t.Columns))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				cols[i] = profileColumn(&t.Columns[i])
			}
		}()
	}
	for i := range t.Columns {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return &model.TableProfile{
		TableName:   tableName,
		RowCount:    t.RowCount(),
		ColumnCount: len(t.Columns),
		Columns:     cols,
	}, nil
}
