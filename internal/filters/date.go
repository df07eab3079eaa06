package filters

import (
	"time"

	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
)

// DateRange keeps rows whose primary date lies in [Start, End]. A zero bound
// leaves that side open. Rows with a missing or unreadable date never qualify.
type DateRange struct {
	Start time.Time `mapstructure:"date_start" json:"date_start"`
	End   time.Time `mapstructure:"date_end" json:"date_end"`
}

func (DateRange) Kind() Kind { return KindDate }

func (DateRange) Validate() error { return nil }

// Contains reports whether t lies within the range.
func (f DateRange) Contains(t time.Time) bool {
	if !f.Start.IsZero() && t.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && t.After(f.End) {
		return false
	}
	return true
}

func (f DateRange) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	if missing := ds.Missing(columns.DatePrimary); len(missing) > 0 {
		return nil, columnError(KindDate, missing)
	}
	dates, err := ds.Column(columns.DatePrimary)
	if err != nil {
		return nil, err
	}
	return ds.Where(func(i int) bool {
		t, ok := dataset.TimeValue(dates.Elem(i))
		return ok && f.Contains(t)
	})
}
