package slicers

import (
	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
)

// Info keeps the identity and result columns, in their fixed order.
type Info struct{}

func (Info) Kind() Kind { return KindInfo }

func (Info) Validate() error { return nil }

// Apply fails with a column error naming every absent info column.
func (Info) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	return ds.Select(operation(KindInfo), columns.InfoColumns())
}
