// Package slicers implements the column-selection strategies over a match
// dataset. Slicers never drop rows.
package slicers

import (
	"fmt"

	"github.com/irfndi/oddsframe/internal/dataset"
)

// Kind names a slicer strategy.
type Kind string

const (
	KindInfo       Kind = "info"
	KindStatistics Kind = "statistics"
	KindOdds       Kind = "odds"
)

// Kinds lists every slicer kind.
var Kinds = []Kind{KindInfo, KindStatistics, KindOdds}

// IsValid checks if the kind names a known slicer
func (k Kind) IsValid() bool {
	switch k {
	case KindInfo, KindStatistics, KindOdds:
		return true
	}
	return false
}

// Slicer selects a subset of the columns of a dataset.
type Slicer interface {
	Kind() Kind
	Validate() error
	Apply(ds *dataset.Dataset) (*dataset.Dataset, error)
}

func operation(k Kind) string {
	return fmt.Sprintf("%s slicer", k)
}
