// Package columns names the column groups of the match/odds dataset and
// resolves selections over them.
package columns

import (
	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/lookup"
)

// OddsSelection picks odds columns by bookmaker, market and open/closed tag.
// An empty list does not constrain its dimension.
type OddsSelection struct {
	Bookmakers []string `mapstructure:"bookmaker" json:"bookmaker,omitempty"`
	Markets    []string `mapstructure:"odds_market" json:"odds_market,omitempty"`
	OpenClosed []string `mapstructure:"open_closed" json:"open_closed,omitempty"`
}

// Validate checks every token against its enumeration.
func (s OddsSelection) Validate() error {
	if err := lookup.ValidateBookmakers(s.Bookmakers); err != nil {
		return err
	}
	if err := lookup.ValidateMarkets(s.Markets); err != nil {
		return err
	}
	return lookup.ValidateOddsTimes(s.OpenClosed)
}

// excludedTimes returns the tags not selected. Selecting nothing, or both
// tags, excludes nothing.
func (s OddsSelection) excludedTimes() map[lookup.OddsTime]struct{} {
	excluded := make(map[lookup.OddsTime]struct{})
	if len(s.OpenClosed) == 0 {
		return excluded
	}
	selected := make(map[string]struct{}, len(s.OpenClosed))
	for _, t := range s.OpenClosed {
		selected[t] = struct{}{}
	}
	for _, t := range lookup.OddsTimes() {
		if _, ok := selected[t]; !ok {
			excluded[lookup.OddsTime(t)] = struct{}{}
		}
	}
	return excluded
}

// Match returns the index entries kept by the selection, in column order.
// With includeActive false the _active companion columns are left out.
// The stages are independent set predicates, so their order does not matter.
func (s OddsSelection) Match(index []dataset.OddsColumn, includeActive bool) []dataset.OddsColumn {
	bookmakers := stringSet(s.Bookmakers)
	markets := stringSet(s.Markets)
	excluded := s.excludedTimes()

	out := make([]dataset.OddsColumn, 0, len(index))
	for _, col := range index {
		if len(bookmakers) > 0 {
			if _, ok := bookmakers[col.Bookmaker]; !ok {
				continue
			}
		}
		if len(markets) > 0 {
			if _, ok := markets[col.Market]; !ok {
				continue
			}
		}
		if col.Time != "" {
			if _, ok := excluded[col.Time]; ok {
				continue
			}
		}
		if col.Active && !includeActive {
			continue
		}
		out = append(out, col)
	}
	return out
}

// Names returns the column names of entries.
func Names(entries []dataset.OddsColumn) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
