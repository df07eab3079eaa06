// Package goals computes the final-score distribution of a set of matches.
package goals

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/utils"
)

// MaxGoals is the highest per-team score kept in the matrix.
const MaxGoals = 6

const size = MaxGoals + 1

var hundred = decimal.NewFromInt(100)

// Distribution is the home-by-away goal matrix. Percentages are shares of
// every parsed score, including scores above MaxGoals, so the matrix may sum
// to less than 100.
type Distribution struct {
	Counts  [size][size]int             `json:"counts"`
	Percent [size][size]decimal.Decimal `json:"percent"`
	// Matches counts the scores inside the matrix.
	Matches int `json:"matches"`
	// Parsed counts every readable score.
	Parsed int `json:"parsed"`
	// Skipped counts missing or unreadable scores.
	Skipped int             `json:"skipped"`
	HomeWin decimal.Decimal `json:"home_win"`
	Draw    decimal.Decimal `json:"draw"`
	AwayWin decimal.Decimal `json:"away_win"`
	Leagues []string        `json:"leagues"`
}

// ParseScore reads a "home:away" score.
func ParseScore(s string) (home, away int, ok bool) {
	h, a, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, 0, false
	}
	home, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || home < 0 {
		return 0, 0, false
	}
	away, err = strconv.Atoi(strings.TrimSpace(a))
	if err != nil || away < 0 {
		return 0, 0, false
	}
	return home, away, true
}

// Compute builds the distribution from the full-and-extra-time score column.
// The league list is empty when the dataset has no primary league column.
func Compute(ds *dataset.Dataset) (*Distribution, error) {
	if missing := ds.Missing(columns.GoalsFullExtraTime); len(missing) > 0 {
		return nil, utils.NewColumnError("goal distribution", missing...)
	}
	scores, err := ds.Column(columns.GoalsFullExtraTime)
	if err != nil {
		return nil, err
	}

	d := &Distribution{Leagues: []string{}}
	for i := 0; i < ds.Nrow(); i++ {
		s, ok := dataset.StringValue(scores.Elem(i))
		if !ok {
			d.Skipped++
			continue
		}
		home, away, ok := ParseScore(s)
		if !ok {
			d.Skipped++
			continue
		}
		d.Parsed++
		if home > MaxGoals || away > MaxGoals {
			continue
		}
		d.Counts[home][away]++
		d.Matches++
	}

	d.percentages()

	if len(ds.Missing(columns.LeaguePrimary)) == 0 {
		leagues, err := ds.Column(columns.LeaguePrimary)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]struct{})
		for i := 0; i < ds.Nrow(); i++ {
			l, ok := dataset.StringValue(leagues.Elem(i))
			if !ok {
				continue
			}
			if _, dup := seen[l]; dup {
				continue
			}
			seen[l] = struct{}{}
			d.Leagues = append(d.Leagues, l)
		}
	}
	return d, nil
}

func (d *Distribution) percentages() {
	home, draw, away := decimal.Zero, decimal.Zero, decimal.Zero
	for h := 0; h < size; h++ {
		for a := 0; a < size; a++ {
			pct := decimal.Zero
			if d.Parsed > 0 {
				pct = decimal.NewFromInt(int64(d.Counts[h][a])).Mul(hundred).Div(decimal.NewFromInt(int64(d.Parsed)))
			}
			d.Percent[h][a] = pct.Round(2)
			switch {
			case h > a:
				home = home.Add(pct)
			case h == a:
				draw = draw.Add(pct)
			default:
				away = away.Add(pct)
			}
		}
	}
	d.HomeWin = home.Round(2)
	d.Draw = draw.Round(2)
	d.AwayWin = away.Round(2)
}
