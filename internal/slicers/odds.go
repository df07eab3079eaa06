package slicers

import (
	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
)

// Odds keeps the odds columns matched by the selection, in dataset order.
// The _active companions are kept unless Active is false.
type Odds struct {
	columns.OddsSelection `mapstructure:",squash"`
	Active                bool `mapstructure:"active" json:"active"`
}

// NewOdds returns an odds slicer that keeps the _active companions.
func NewOdds(sel columns.OddsSelection) Odds {
	return Odds{OddsSelection: sel, Active: true}
}

func (Odds) Kind() Kind { return KindOdds }

func (s Odds) Validate() error {
	return s.OddsSelection.Validate()
}

func (s Odds) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	matched := s.Match(ds.OddsColumns(), s.Active)
	return ds.Select(operation(KindOdds), columns.Names(matched))
}
