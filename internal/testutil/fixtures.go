package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
)

// StatsColumns are the statistics columns present in the match fixture.
var StatsColumns = []string{
	"home_lineup_formation",
	"away_lineup_formation",
	"home_num_players",
	"away_num_players",
	"home_player_1_rating",
	"away_player_1_rating",
	"incident_incidentType_0",
	"incident_time_0",
	"stats_all_tvdata_corner_kicks_home",
	"stats_all_tvdata_corner_kicks_away",
	"minute_1",
	"minute_2",
	"vote1",
	"vote2",
	"voteX",
}

// OddsColumns are the odds columns present in the match fixture.
var OddsColumns = []string{
	"bet365_1x2_home_open",
	"bet365_1x2_home_open_active",
	"bet365_1x2_home_closed",
	"bet365_1x2_home_closed_active",
	"bet365_OU_over_2.5_open",
	"bet365_OU_over_2.5_open_active",
	"Pinnacle_1x2_home_open",
	"Pinnacle_1x2_home_open_active",
	"Pinnacle_1x2_home_closed",
	"Pinnacle_1x2_home_closed_active",
}

var statsSample = map[string]string{
	"home_lineup_formation":              "4-4-2",
	"away_lineup_formation":              "4-3-3",
	"home_num_players":                   "11",
	"away_num_players":                   "11",
	"home_player_1_rating":               "7.1",
	"away_player_1_rating":               "6.4",
	"incident_incidentType_0":            "goal",
	"incident_time_0":                    "23",
	"stats_all_tvdata_corner_kicks_home": "5",
	"stats_all_tvdata_corner_kicks_away": "3",
	"minute_1":                           "12",
	"minute_2":                           "-8",
	"vote1":                              "1520",
	"vote2":                              "830",
	"voteX":                              "410",
}

// MatchColumns returns the fixture header: info, statistics, then odds columns.
func MatchColumns() []string {
	out := columns.InfoColumns()
	out = append(out, StatsColumns...)
	return append(out, OddsColumns...)
}

// MatchRecords returns the fixture as string records with a header row.
//
//	row  status  date_sofascore       countries              season     stats            odds
//	0    100     2021-05-01 18:00:00  Brazil/Brazil          2021       all              all, active
//	1    60      2021-06-15 20:00:00  Chile/Chile            2021       graph, vote      bet365 1x2 open (inactive), Pinnacle open
//	2    100     2022-02-10 12:00:00  -/Argentina            2021/2022  formation, player bet365 all, active
//	3    110     2022-08-20 19:30:00  England/England        -          none             Pinnacle all, active
//	4    70      -                    Spain/Spain            2022       all              all, bet365 1x2 closed inactive
func MatchRecords() [][]string {
	header := MatchColumns()
	records := [][]string{header}
	for _, row := range matchRows() {
		rec := make([]string, len(header))
		for i, c := range header {
			rec[i] = row[c]
		}
		records = append(records, rec)
	}
	return records
}

// MatchDataset loads MatchRecords as a dataset.
func MatchDataset(t testing.TB) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromRecords(MatchRecords())
	require.NoError(t, err)
	return ds
}

func matchRows() []map[string]string {
	return []map[string]string{
		merge(
			info("100", "2021-05-01 18:00:00", "Brazil", "Brazil", "2021", "Serie A", "2:1"),
			stats(columns.Categories...),
			odds("bet365", "1"),
			odds("Pinnacle", "1"),
		),
		merge(
			info("60", "2021-06-15 20:00:00", "Chile", "Chile", "2021", "Primera Division", ""),
			stats(columns.Graph, columns.Vote),
			map[string]string{
				"bet365_1x2_home_open":          "1.90",
				"bet365_1x2_home_open_active":   "0",
				"Pinnacle_1x2_home_open":        "1.95",
				"Pinnacle_1x2_home_open_active": "1",
			},
		),
		merge(
			info("100", "2022-02-10 12:00:00", "", "Argentina", "2021/2022", "Liga Profesional", "0:0"),
			stats(columns.Formation, columns.PlayerData),
			odds("bet365", "1"),
		),
		merge(
			info("110", "2022-08-20 19:30:00", "England", "England", "", "Premier League", "3:3"),
			odds("Pinnacle", "1"),
		),
		merge(
			info("70", "", "Spain", "Spain", "2022", "LaLiga", "1:4"),
			stats(columns.Categories...),
			odds("bet365", "1"),
			odds("Pinnacle", "1"),
			map[string]string{"bet365_1x2_home_closed_active": "0"},
		),
	}
}

func info(status, date, countryPrimary, countrySecondary, season, league, goals string) map[string]string {
	return map[string]string{
		columns.StatusCode:         status,
		columns.DatePrimary:        date,
		columns.CountryPrimary:     countryPrimary,
		columns.CountrySecondary:   countrySecondary,
		columns.Season:             season,
		columns.LeaguePrimary:      league,
		columns.GoalsFullExtraTime: goals,
		"home_team_sofascore":      "Home " + league,
		"away_team_sofascore":      "Away " + league,
		"url":                      "https://example.com/match/" + status,
	}
}

func stats(categories ...columns.Category) map[string]string {
	out := make(map[string]string)
	for _, c := range categories {
		for _, col := range StatsColumns {
			if c.Matches(col) {
				out[col] = statsSample[col]
			}
		}
	}
	return out
}

func odds(bookmaker, active string) map[string]string {
	out := make(map[string]string)
	prices := []string{"1.85", "1.80", "2.05"}
	i := 0
	for _, col := range OddsColumns {
		b, ok := dataset.ParseOddsColumn(col)
		if !ok || b.Bookmaker != bookmaker {
			continue
		}
		if b.Active {
			out[col] = active
			continue
		}
		out[col] = prices[i%len(prices)]
		i++
	}
	return out
}

func merge(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
