package testutil

import (
	domainrankings "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	domainschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	domainteams "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

// SampleRankings returns three ranked players; players 1 and 2 tie on value.
func SampleRankings() []domainrankings.Entity {
	return []domainrankings.Entity{
		{ID: 1, Name: "Player One", Team: "AAA", Points: 30, Turnovers: 3.1, Value: 2.1, Rank: 1},
		{ID: 2, Name: "Player Two", Team: "BBB", Points: 25, Turnovers: 1.2, Value: 2.1, Rank: 2},
		{ID: 3, Name: "Player Three", Team: "CCC", Points: 18, Turnovers: 2.0, Value: 0.4, Rank: 3},
	}
}

// SampleTeams returns a four-team league.
func SampleTeams() []domainteams.Team {
	return []domainteams.Team{
		{ID: 1, Name: "Splash Bros"},
		{ID: 2, Name: "Glass Cleaners"},
		{ID: 3, Name: "Pick and Roll"},
		{ID: 4, Name: "Fast Breakers"},
	}
}

// SampleStandings returns the four-team league ranked by record.
func SampleStandings() domainteams.Standings {
	return domainteams.Standings{
		League: domainteams.League{Name: "Test League", Season: 2025},
		Teams: []domainteams.Standing{
			{Rank: 1, TeamID: 3, Name: "Pick and Roll", Owner: "Casey", Wins: 9, Losses: 3},
			{Rank: 2, TeamID: 1, Name: "Splash Bros", Owner: "Alex", Wins: 7, Losses: 4, Ties: 1},
			{Rank: 3, TeamID: 2, Name: "Glass Cleaners", Owner: "Blair", Wins: 5, Losses: 7},
			{Rank: 4, TeamID: 4, Name: "Fast Breakers", Owner: "Drew", Wins: 2, Losses: 10},
		},
	}.Normalize()
}

// SamplePage returns a two-matchup page over three days. Team 1 leads 28 to 24.
func SamplePage() domainschedule.Page {
	return domainschedule.Page{
		Period:   7,
		Start:    "2024-01-15",
		End:      "2024-01-21",
		Days:     []string{"Mon", "Tue", "Wed"},
		DayDates: []string{"01/15", "01/16", "01/17"},
		Matchups: []domainschedule.Matchup{
			{
				Home: domainschedule.Roster{TeamID: 1, Name: "Splash Bros", Total: 28, Daily: []int{10, 0, 18}},
				Away: domainschedule.Roster{TeamID: 2, Name: "Glass Cleaners", Total: 24, Daily: []int{8, 8, 8}},
			},
			{
				Home: domainschedule.Roster{TeamID: 3, Name: "Pick and Roll", Total: 20, Daily: []int{7, 7, 6}},
				Away: domainschedule.Roster{TeamID: 4, Name: "Fast Breakers", Total: 20, Daily: []int{6, 7, 7}},
			},
		},
	}
}
