package columns

import "strings"

// Category is one of the six groups of match statistics from the primary source.
type Category string

const (
	Formation  Category = "formation"
	PlayerData Category = "player_data"
	Incident   Category = "incident"
	Statistics Category = "statistics"
	Graph      Category = "graph"
	Vote       Category = "vote"
)

// Categories lists the statistics categories in their canonical order.
var Categories = []Category{Formation, PlayerData, Incident, Statistics, Graph, Vote}

var representatives = map[Category]string{
	Formation:  "home_lineup_formation",
	PlayerData: "home_num_players",
	Incident:   "incident_incidentType_0",
	Statistics: "stats_all_tvdata_corner_kicks_home",
	Graph:      "minute_1",
	Vote:       "vote1",
}

var tokens = map[Category][]string{
	Formation:  {"formation"},
	PlayerData: {"home_num", "away_num", "home_player", "away_player"},
	Incident:   {"incident"},
	Statistics: {"stats"},
	Graph:      {"minute"},
	Vote:       {"vote"},
}

// Representative returns the column whose presence marks the category as available.
func (c Category) Representative() string {
	return representatives[c]
}

// Matches reports whether column belongs to the category by name.
func (c Category) Matches(column string) bool {
	for _, tok := range tokens[c] {
		if strings.Contains(column, tok) {
			return true
		}
	}
	return false
}

// IsValid checks if the category is one of the six known ones
func (c Category) IsValid() bool {
	_, ok := representatives[c]
	return ok
}

// Flags enables statistics categories; the zero value enables none.
type Flags struct {
	Formation  bool `mapstructure:"formation" json:"formation"`
	PlayerData bool `mapstructure:"player_data" json:"player_data"`
	Incident   bool `mapstructure:"incident" json:"incident"`
	Statistics bool `mapstructure:"statistics" json:"statistics"`
	Graph      bool `mapstructure:"graph" json:"graph"`
	Vote       bool `mapstructure:"vote" json:"vote"`
}

// Enabled returns the enabled categories in canonical order.
func (f Flags) Enabled() []Category {
	var out []Category
	if f.Formation {
		out = append(out, Formation)
	}
	if f.PlayerData {
		out = append(out, PlayerData)
	}
	if f.Incident {
		out = append(out, Incident)
	}
	if f.Statistics {
		out = append(out, Statistics)
	}
	if f.Graph {
		out = append(out, Graph)
	}
	if f.Vote {
		out = append(out, Vote)
	}
	return out
}

// ByCategory returns the names matching each enabled category, concatenated
// in category order. A name matched by several categories is listed once, at
// its first category.
func ByCategory(names []string, enabled []Category) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range enabled {
		for _, n := range names {
			if _, dup := seen[n]; dup || !c.Matches(n) {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}
	return out
}
