package dataset

import (
	"strings"

	"github.com/irfndi/oddsframe/internal/lookup"
)

// OddsColumn describes an odds column by the dimensions encoded in its name:
// <bookmaker>_..._<market>_..._<open|closed>[_active].
type OddsColumn struct {
	Name      string
	Position  int
	Bookmaker string
	// Market is empty when no segment names a known market.
	Market string
	// Time is empty when the column carries neither tag.
	Time   lookup.OddsTime
	Active bool
}

// OddsColumns returns the odds columns of d in column order. The index is
// built on first use and shared by every later call.
func (d *Dataset) OddsColumns() []OddsColumn {
	d.indexOnce.Do(func() {
		d.odds = BuildOddsIndex(d.Names())
	})
	out := make([]OddsColumn, len(d.odds))
	copy(out, d.odds)
	return out
}

// BuildOddsIndex classifies names; names without a bookmaker prefix are skipped.
func BuildOddsIndex(names []string) []OddsColumn {
	index := make([]OddsColumn, 0, len(names))
	for pos, name := range names {
		col, ok := ParseOddsColumn(name)
		if !ok {
			continue
		}
		col.Position = pos
		index = append(index, col)
	}
	return index
}

// ParseOddsColumn splits an odds column name into its dimensions.
func ParseOddsColumn(name string) (OddsColumn, bool) {
	bookmaker, ok := lookup.BookmakerPrefix(name)
	if !ok {
		return OddsColumn{}, false
	}
	col := OddsColumn{Name: name, Bookmaker: bookmaker}

	segments := strings.Split(name[len(bookmaker)+1:], "_")
	last := len(segments) - 1
	for i, seg := range segments {
		switch {
		// a market segment is always followed by another segment
		case col.Market == "" && i < last && lookup.IsMarket(seg):
			col.Market = seg
		case col.Time == "" && lookup.IsOddsTime(seg):
			col.Time = lookup.OddsTime(seg)
		}
	}
	col.Active = last > 0 && segments[last] == lookup.ActiveSuffix
	return col, true
}
