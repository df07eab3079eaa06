package filters

import (
	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/lookup"
)

// Country keeps rows whose primary or secondary country is one of Countries.
// Names are compared after Unicode normalization and are not validated
// against the known country list.
type Country struct {
	Countries []string `mapstructure:"countries" json:"countries"`
}

func (Country) Kind() Kind { return KindCountry }

func (Country) Validate() error { return nil }

func (f Country) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if missing := ds.Missing(columns.CountryPrimary, columns.CountrySecondary); len(missing) > 0 {
		return nil, columnError(KindCountry, missing)
	}
	wanted := make(map[string]struct{}, len(f.Countries))
	for _, c := range f.Countries {
		wanted[lookup.NormalizeName(c)] = struct{}{}
	}

	primary, err := ds.Column(columns.CountryPrimary)
	if err != nil {
		return nil, err
	}
	secondary, err := ds.Column(columns.CountrySecondary)
	if err != nil {
		return nil, err
	}

	in := func(v string, ok bool) bool {
		if !ok {
			return false
		}
		_, hit := wanted[lookup.NormalizeName(v)]
		return hit
	}
	return ds.Where(func(i int) bool {
		return in(dataset.StringValue(primary.Elem(i))) || in(dataset.StringValue(secondary.Elem(i)))
	})
}
