package filters

import (
	"strconv"
	"strings"

	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
)

// Season keeps rows whose season text contains Year, so 2021 matches both
// "2021" and "2020/2021". Rows without a season never qualify.
type Season struct {
	Year int `mapstructure:"year" json:"year"`
}

func (Season) Kind() Kind { return KindSeason }

func (Season) Validate() error { return nil }

func (f Season) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if missing := ds.Missing(columns.Season); len(missing) > 0 {
		return nil, columnError(KindSeason, missing)
	}
	season, err := ds.Column(columns.Season)
	if err != nil {
		return nil, err
	}
	year := strconv.Itoa(f.Year)
	return ds.Where(func(i int) bool {
		el := season.Elem(i)
		if dataset.IsMissing(el) {
			return false
		}
		// numeric seasons are read as floats; compare their integer text
		if v, ok := dataset.IntValue(el); ok {
			return strings.Contains(strconv.Itoa(v), year)
		}
		s, _ := dataset.StringValue(el)
		return strings.Contains(s, year)
	})
}
