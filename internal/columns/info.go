package columns

// Info is the ordered identity/result column set of a match row.
var Info = []string{
	"status_code",
	"status_description",
	"date_sofascore",
	"date_oddsportal",
	"country_sofascore",
	"country_oddsportal",
	"league_sofascore",
	"league_oddsportal",
	"season",
	"round",
	"home_team_sofascore",
	"away_team_sofascore",
	"home_team_short_name",
	"away_team_short_name",
	"home_team_oddsportal",
	"away_team_oddsportal",
	"goal_string",
	"goal_ht_sofascore",
	"goal_ft_sofascore",
	"goal_ht_oddsportal",
	"goal_ft_oddsportal",
	"goal_fullandextratime_sofascore",
	"goal_fulltime_oddsportal",
	"goal_fullandextratime_oddsportal",
	"result_ht_sofascore",
	"result_ft_sofascore",
	"result_ht_oddsportal",
	"result_ft_oddsportal",
	"winner_code_sofascore",
	"result_fulltime_oddsportal",
	"url",
}

// Named columns read by the row filters.
const (
	StatusCode         = "status_code"
	DatePrimary        = "date_sofascore"
	CountryPrimary     = "country_sofascore"
	CountrySecondary   = "country_oddsportal"
	Season             = "season"
	LeaguePrimary      = "league_sofascore"
	GoalsFullExtraTime = "goal_fullandextratime_sofascore"
)

// InfoColumns returns a copy of Info.
func InfoColumns() []string {
	out := make([]string, len(Info))
	copy(out, Info)
	return out
}
