package slicers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfndi/oddsframe/internal/columns"
	"github.com/irfndi/oddsframe/internal/dataset"
	"github.com/irfndi/oddsframe/internal/testutil"
	"github.com/irfndi/oddsframe/internal/utils"
)

func TestKind_IsValid(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.IsValid())
	}
	assert.False(t, Kind("country").IsValid())
}

func TestInfo(t *testing.T) {
	ds := testutil.MatchDataset(t)

	out, err := Info{}.Apply(ds)
	require.NoError(t, err)
	assert.Equal(t, columns.Info, out.Names())
	assert.Len(t, out.Names(), 31)
	assert.Equal(t, ds.Nrow(), out.Nrow())

	league, err := out.Column(columns.LeaguePrimary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Serie A", "Primera Division", "Liga Profesional", "Premier League", "LaLiga"}, league.Records())
}

func TestInfo_MissingColumns(t *testing.T) {
	ds, err := dataset.FromRecords([][]string{
		{columns.StatusCode, columns.Season},
		{"100", "2021"},
	})
	require.NoError(t, err)

	_, err = Info{}.Apply(ds)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrMissingColumn))

	var ce *utils.ColumnError
	require.True(t, errors.As(err, &ce))
	assert.Len(t, ce.Columns, 29)
	assert.NotContains(t, ce.Columns, columns.StatusCode)
	assert.Equal(t, "info slicer", ce.Operation)
}

func TestStatistics(t *testing.T) {
	ds := testutil.MatchDataset(t)

	tests := []struct {
		name  string
		flags columns.Flags
		want  []string
	}{
		{
			name:  "formation",
			flags: columns.Flags{Formation: true},
			want:  []string{"home_lineup_formation", "away_lineup_formation"},
		},
		{
			name:  "player data",
			flags: columns.Flags{PlayerData: true},
			want:  []string{"home_num_players", "away_num_players", "home_player_1_rating", "away_player_1_rating"},
		},
		{
			name:  "formation and vote",
			flags: columns.Flags{Formation: true, Vote: true},
			want:  []string{"home_lineup_formation", "away_lineup_formation", "vote1", "vote2", "voteX"},
		},
		{
			name:  "graph then vote",
			flags: columns.Flags{Vote: true, Graph: true},
			want:  []string{"minute_1", "minute_2", "vote1", "vote2", "voteX"},
		},
		{
			name:  "incident and statistics",
			flags: columns.Flags{Incident: true, Statistics: true},
			want: []string{
				"incident_incidentType_0", "incident_time_0",
				"stats_all_tvdata_corner_kicks_home", "stats_all_tvdata_corner_kicks_away",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Statistics{tt.flags}.Apply(ds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Names())
			assert.Equal(t, ds.Nrow(), out.Nrow())
		})
	}
}

func TestStatistics_NoFlags(t *testing.T) {
	ds := testutil.MatchDataset(t)

	out, err := Statistics{}.Apply(ds)
	require.NoError(t, err)
	assert.Same(t, ds, out)
}

func TestStatistics_ColumnInTwoCategories(t *testing.T) {
	ds, err := dataset.FromRecords([][]string{
		{"stats_incident_count", "incident_time_0", "stats_shots"},
		{"1", "12", "9"},
	})
	require.NoError(t, err)

	out, err := Statistics{columns.Flags{Incident: true, Statistics: true}}.Apply(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{"stats_incident_count", "incident_time_0", "stats_shots"}, out.Names())
}

func TestStatistics_NoMatches(t *testing.T) {
	ds, err := dataset.FromRecords([][]string{{"status_code"}, {"100"}, {"60"}})
	require.NoError(t, err)

	out, err := Statistics{columns.Flags{Vote: true}}.Apply(ds)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Ncol())
	assert.Equal(t, 2, out.Nrow())
}

func TestOdds(t *testing.T) {
	ds := testutil.MatchDataset(t)

	tests := []struct {
		name string
		s    Odds
		want []string
	}{
		{
			name: "defaults keep every odds column",
			s:    NewOdds(columns.OddsSelection{}),
			want: testutil.OddsColumns,
		},
		{
			name: "bet365 1x2",
			s:    NewOdds(columns.OddsSelection{Bookmakers: []string{"bet365"}, Markets: []string{"1x2"}}),
			want: []string{
				"bet365_1x2_home_open", "bet365_1x2_home_open_active",
				"bet365_1x2_home_closed", "bet365_1x2_home_closed_active",
			},
		},
		{
			name: "closed without active",
			s:    Odds{OddsSelection: columns.OddsSelection{OpenClosed: []string{"closed"}}},
			want: []string{"bet365_1x2_home_closed", "Pinnacle_1x2_home_closed"},
		},
		{
			name: "both tags exclude nothing",
			s: Odds{OddsSelection: columns.OddsSelection{
				Bookmakers: []string{"Pinnacle"},
				OpenClosed: []string{"open", "closed"},
			}},
			want: []string{"Pinnacle_1x2_home_open", "Pinnacle_1x2_home_closed"},
		},
		{
			name: "bookmaker without columns",
			s:    NewOdds(columns.OddsSelection{Bookmakers: []string{"1xBet"}}),
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.s.Apply(ds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Names())
			assert.Equal(t, ds.Nrow(), out.Nrow(), "rows with missing odds are kept")
		})
	}
}

func TestOdds_ConstraintOrderIndependent(t *testing.T) {
	index := dataset.BuildOddsIndex(testutil.OddsColumns)
	sel := columns.OddsSelection{
		Bookmakers: []string{"bet365", "Pinnacle"},
		Markets:    []string{"1x2"},
		OpenClosed: []string{"open"},
	}

	all := sel.Match(index, true)

	// applying one constraint at a time, in reverse order
	step := columns.OddsSelection{OpenClosed: sel.OpenClosed}.Match(index, true)
	step = columns.OddsSelection{Markets: sel.Markets}.Match(step, true)
	step = columns.OddsSelection{Bookmakers: sel.Bookmakers}.Match(step, true)

	assert.Equal(t, columns.Names(all), columns.Names(step))
}

func TestOdds_Invalid(t *testing.T) {
	ds := testutil.MatchDataset(t)

	_, err := NewOdds(columns.OddsSelection{Markets: []string{"corners"}}).Apply(ds)
	require.Error(t, err)

	var ve *utils.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "market", ve.Field)
	assert.Equal(t, "corners", ve.Value)
}
