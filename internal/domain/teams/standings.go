package teams

import (
	"fmt"
	"slices"
)

// League identifies the fantasy league and its season.
type League struct {
	Name   string `json:"name"`
	Season int    `json:"season"`
}

// Standing is one team's place in the league table.
type Standing struct {
	Rank   int     `json:"rank"`
	TeamID int     `json:"id"`
	Name   string  `json:"name"`
	Owner  string  `json:"owner,omitempty"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Ties   int     `json:"ties"`
	WinPct float64 `json:"winPct"`
}

// Record renders the W-L-T line.
func (s Standing) Record() string {
	return fmt.Sprintf("%d-%d-%d", s.Wins, s.Losses, s.Ties)
}

// Standings is the league table with the league it belongs to.
type Standings struct {
	League League     `json:"league"`
	Teams  []Standing `json:"teams"`
}

// WinPercentage counts a tie as half a win. A team with no games has 0.
func WinPercentage(wins, losses, ties int) float64 {
	games := wins + losses + ties
	if games == 0 {
		return 0
	}
	return (float64(wins) + float64(ties)/2) / float64(games)
}

// Normalize orders teams by rank and fills a missing win percentage from the record.
// Teams without a rank keep their relative order after the ranked ones.
func (s Standings) Normalize() Standings {
	out := Standings{League: s.League, Teams: slices.Clone(s.Teams)}
	for i := range out.Teams {
		t := &out.Teams[i]
		if t.WinPct == 0 {
			t.WinPct = WinPercentage(t.Wins, t.Losses, t.Ties)
		}
	}
	slices.SortStableFunc(out.Teams, func(a, b Standing) int {
		switch {
		case a.Rank == b.Rank:
			return 0
		case a.Rank == 0:
			return 1
		case b.Rank == 0:
			return -1
		default:
			return a.Rank - b.Rank
		}
	})
	if out.Teams == nil {
		out.Teams = []Standing{}
	}
	return out
}
