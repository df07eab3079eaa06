package pipeline

import (
	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/filters"
	"github.com/irfndi/oddsframe/internal/slicers"
	"github.com/irfndi/oddsframe/internal/utils"
)

// StepType says whether a step selects rows or columns.
type StepType string

const (
	StepFilter StepType = "filter"
	StepSlice  StepType = "slice"
)

// Step is one declarative operation of a query.
type Step struct {
	Type   StepType               `mapstructure:"type" json:"type" yaml:"type"`
	Kind   string                 `mapstructure:"kind" json:"kind" yaml:"kind"`
	Params map[string]interface{} `mapstructure:"params" json:"params,omitempty" yaml:"params,omitempty"`
}

// operation is satisfied by every filter and slicer.
type operation interface {
	Validate() error
	Apply(ds *dataset.Dataset) (*dataset.Dataset, error)
}

func (s Step) name() string {
	return s.Kind + " " + string(s.Type)
}

// build decodes the step parameters into a filter or slicer and validates it.
func (s Step) build() (operation, error) {
	var (
		op     operation
		target interface{}
	)
	switch s.Type {
	case StepFilter:
		f, err := newFilter(filters.Kind(s.Kind))
		if err != nil {
			return nil, err
		}
		op, target = f, f
	case StepSlice:
		sl, err := newSlicer(slicers.Kind(s.Kind))
		if err != nil {
			return nil, err
		}
		op, target = sl, sl
	default:
		return nil, utils.NewInvalidValueError("step type", string(s.Type), []string{string(StepFilter), string(StepSlice)})
	}

	if err := decodeParams(s.name(), s.Params, target); err != nil {
		return nil, err
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return op, nil
}

// newFilter returns a pointer to a zero filter of kind.
func newFilter(kind filters.Kind) (filters.Filter, error) {
	switch kind {
	case filters.KindCountry:
		return &filters.Country{}, nil
	case filters.KindDate:
		return &filters.DateRange{}, nil
	case filters.KindSeason:
		return &filters.Season{}, nil
	case filters.KindStatus:
		return &filters.Status{}, nil
	case filters.KindStatistics:
		return &filters.Statistics{}, nil
	case filters.KindOdds:
		return &filters.Odds{}, nil
	}
	return nil, utils.NewInvalidValueError("filter kind", string(kind), kindNames(filters.Kinds))
}

// newSlicer returns a pointer to a slicer of kind with its defaults set.
func newSlicer(kind slicers.Kind) (slicers.Slicer, error) {
	switch kind {
	case slicers.KindInfo:
		return &slicers.Info{}, nil
	case slicers.KindStatistics:
		return &slicers.Statistics{}, nil
	case slicers.KindOdds:
		s := slicers.NewOdds(columns.OddsSelection{})
		return &s, nil
	}
	return nil, utils.NewInvalidValueError("slicer kind", string(kind), kindNames(slicers.Kinds))
}

func kindNames[K ~string](kinds []K) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
