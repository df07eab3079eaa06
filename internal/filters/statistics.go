package filters

import (
	"github.com/go-gota/gota/series"

	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
)

// Statistics keeps rows where every enabled category has its representative
// column filled. With no category enabled the input is returned unchanged.
type Statistics struct {
	columns.Flags `mapstructure:",squash"`
}

func (Statistics) Kind() Kind { return KindStatistics }

func (Statistics) Validate() error { return nil }

func (f Statistics) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	enabled := f.Enabled()
	if len(enabled) == 0 {
		return ds, nil
	}

	reps := make([]string, len(enabled))
	for i, c := range enabled {
		reps[i] = c.Representative()
	}
	if missing := ds.Missing(reps...); len(missing) > 0 {
		return nil, columnError(KindStatistics, missing)
	}

	cols := make([]series.Series, len(reps))
	for i, name := range reps {
		col, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return ds.Where(func(i int) bool {
		for _, col := range cols {
			if dataset.IsMissing(col.Elem(i)) {
				return false
			}
		}
		return true
	})
}
