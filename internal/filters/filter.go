// Package filters implements the row-selection strategies over a match dataset.
//
// Every filter keeps the column set and row order of its input and returns
// only the qualifying rows. Parameters are validated before any row is read.
package filters

import (
	"fmt"

	"github.com/irfndi/oddsframe/internal/dataset"
)

// Kind names a filter strategy.
type Kind string

const (
	KindCountry    Kind = "country"
	KindDate       Kind = "date"
	KindSeason     Kind = "season"
	KindStatus     Kind = "status"
	KindStatistics Kind = "statistics"
	KindOdds       Kind = "odds"
)

// Kinds lists every filter kind.
var Kinds = []Kind{KindCountry, KindDate, KindSeason, KindStatus, KindStatistics, KindOdds}

// IsValid checks if the kind names a known filter
func (k Kind) IsValid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Filter selects the rows of a dataset satisfying one criterion.
type Filter interface {
	Kind() Kind
	// Validate checks the parameters without touching any data.
	Validate() error
	// Apply validates, then returns the qualifying rows. ds is not modified.
	Apply(ds *dataset.Dataset) (*dataset.Dataset, error)
}

// Chain applies filters in order, stopping at the first error.
func Chain(ds *dataset.Dataset, filters ...Filter) (*dataset.Dataset, error) {
	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%s filter: %w", f.Kind(), err)
		}
	}
	out := ds
	for _, f := range filters {
		next, err := f.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("%s filter: %w", f.Kind(), err)
		}
		out = next
	}
	return out, nil
}
