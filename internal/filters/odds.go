package filters

import (
	"github.com/go-gota/gota/series"

	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
)

// Odds keeps rows where every matched odds column holds a value. With Active
// set, a zero counts as missing and the _active companions take part in the
// match; otherwise the companions are ignored. All columns are returned.
type Odds struct {
	columns.OddsSelection `mapstructure:",squash"`
	Active                bool `mapstructure:"active" json:"active"`
}

func (Odds) Kind() Kind { return KindOdds }

func (f Odds) Validate() error {
	return f.OddsSelection.Validate()
}

// Matched returns the odds columns of ds the filter inspects.
func (f Odds) Matched(ds *dataset.Dataset) []dataset.OddsColumn {
	return f.Match(ds.OddsColumns(), f.Active)
}

func (f Odds) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	matched := f.Matched(ds)
	if len(matched) == 0 {
		return ds, nil
	}

	cols := make([]series.Series, len(matched))
	for i, m := range matched {
		col, err := ds.Column(m.Name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return ds.Where(func(i int) bool {
		for _, col := range cols {
			el := col.Elem(i)
			if dataset.IsMissing(el) || (f.Active && dataset.IsZero(el)) {
				return false
			}
		}
		return true
	})
}
