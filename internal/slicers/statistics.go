package slicers

import (
	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
)

// Statistics keeps the columns of each enabled statistics category, grouped by
// category. With no category enabled the input is returned unchanged.
type Statistics struct {
	columns.Flags `mapstructure:",squash"`
}

func (Statistics) Kind() Kind { return KindStatistics }

func (Statistics) Validate() error { return nil }

func (s Statistics) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	enabled := s.Enabled()
	if len(enabled) == 0 {
		return ds, nil
	}
	return ds.Select(operation(KindStatistics), columns.ByCategory(ds.Names(), enabled))
}
