package filters

import (
	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/lookup"
)

// Status keeps rows whose status code is one of Codes.
type Status struct {
	Codes []int `mapstructure:"status_list" json:"status_list"`
}

func (Status) Kind() Kind { return KindStatus }

// Validate rejects any code outside the recognized match statuses.
func (f Status) Validate() error {
	return lookup.ValidateStatusCodes(f.Codes)
}

func (f Status) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if missing := ds.Missing(columns.StatusCode); len(missing) > 0 {
		return nil, columnError(KindStatus, missing)
	}
	codes := make(map[int]struct{}, len(f.Codes))
	for _, c := range f.Codes {
		codes[c] = struct{}{}
	}
	status, err := ds.Column(columns.StatusCode)
	if err != nil {
		return nil, err
	}
	return ds.Where(func(i int) bool {
		v, ok := dataset.IntValue(status.Elem(i))
		if !ok {
			return false
		}
		_, hit := codes[v]
		return hit
	})
}
