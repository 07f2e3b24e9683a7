package fixture

import (
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

var players = []rankings.Entity{
	{ID: 203999, Name: "Nikola Jokic", Team: "DEN", Minutes: 34.6, Points: 26.4, Rebounds: 12.4, Assists: 9.0, Threes: 1.1, Steals: 1.4, Blocks: 0.9, FieldGoalPct: 0.583, FreeThrowPct: 0.817, Turnovers: 3.0, Value: 11.27, Rank: 1},
	{ID: 1628983, Name: "Shai Gilgeous-Alexander", Team: "OKC", Minutes: 34.0, Points: 30.1, Rebounds: 5.5, Assists: 6.2, Threes: 1.3, Steals: 2.0, Blocks: 0.9, FieldGoalPct: 0.535, FreeThrowPct: 0.874, Turnovers: 2.2, Value: 9.84, Rank: 2},
	{ID: 203954, Name: "Joel Embiid", Team: "PHI", Minutes: 33.6, Points: 34.7, Rebounds: 11.0, Assists: 5.6, Threes: 1.4, Steals: 1.2, Blocks: 1.7, FieldGoalPct: 0.529, FreeThrowPct: 0.883, Turnovers: 3.8, Value: 8.12, Rank: 3},
	{ID: 1641705, Name: "Victor Wembanyama", Team: "SAS", Minutes: 29.7, Points: 21.4, Rebounds: 10.6, Assists: 3.9, Threes: 1.8, Steals: 1.2, Blocks: 3.6, FieldGoalPct: 0.465, FreeThrowPct: 0.797, Turnovers: 3.7, Value: 8.12, Rank: 4},
	{ID: 201939, Name: "Stephen Curry", Team: "GSW", Minutes: 32.7, Points: 26.4, Rebounds: 4.5, Assists: 5.1, Threes: 4.8, Steals: 0.7, Blocks: 0.4, FieldGoalPct: 0.450, FreeThrowPct: 0.923, Turnovers: 2.8, Value: 6.55, Rank: 5},
	{ID: 1629029, Name: "Luka Doncic", Team: "DAL", Minutes: 37.5, Points: 33.9, Rebounds: 9.2, Assists: 9.8, Threes: 4.1, Steals: 1.4, Blocks: 0.5, FieldGoalPct: 0.487, FreeThrowPct: 0.786, Turnovers: 4.0, Value: 6.31, Rank: 6},
	{ID: 1630169, Name: "Tyrese Haliburton", Team: "IND", Minutes: 32.2, Points: 20.1, Rebounds: 3.9, Assists: 10.9, Threes: 2.8, Steals: 1.2, Blocks: 0.7, FieldGoalPct: 0.477, FreeThrowPct: 0.855, Turnovers: 2.3, Value: 5.02, Rank: 7},
	{ID: 1629627, Name: "Zion Williamson", Team: "NOP", Minutes: 31.5, Points: 22.9, Rebounds: 5.8, Assists: 5.0, Threes: 0.1, Steals: 1.1, Blocks: 0.7, FieldGoalPct: 0.570, FreeThrowPct: 0.703, Turnovers: 2.9, Value: -0.48, Rank: 8},
}

var records = map[int]consistency.Record{
	203999: {PlayerID: 203999, Grade: consistency.GradeAPlus, GamesAnalyzed: 20, Recent: consistency.Averages{Points: 26.1, Minutes: 34.2}, Volatility: map[rankings.Key]consistency.Volatility{
		rankings.KeyPoints:   {StdDev: 4.1, CV: 0.16, Rating: consistency.RatingLow},
		rankings.KeyRebounds: {StdDev: 3.2, CV: 0.26, Rating: consistency.RatingModerate},
		rankings.KeyAssists:  {StdDev: 2.4, CV: 0.27, Rating: consistency.RatingModerate},
	}},
	1628983: {PlayerID: 1628983, Grade: consistency.GradeA, GamesAnalyzed: 20, Recent: consistency.Averages{Points: 30.8, Minutes: 33.9}, Volatility: map[rankings.Key]consistency.Volatility{
		rankings.KeyPoints: {StdDev: 6.8, CV: 0.23, Rating: consistency.RatingLow},
		rankings.KeySteals: {StdDev: 1.1, CV: 0.55, Rating: consistency.RatingHigh},
	}},
	1641705: {PlayerID: 1641705, Grade: consistency.GradeC, GamesAnalyzed: 18, Recent: consistency.Averages{Points: 22.0, Minutes: 30.1}, Volatility: map[rankings.Key]consistency.Volatility{
		rankings.KeyPoints: {StdDev: 9.3, CV: 0.43, Rating: consistency.RatingHigh},
		rankings.KeyBlocks: {StdDev: 1.9, CV: 0.53, Rating: consistency.RatingHigh},
	}},
	201939: {PlayerID: 201939, Grade: consistency.GradeB, GamesAnalyzed: 20, Recent: consistency.Averages{Points: 25.7, Minutes: 32.5}, Volatility: map[rankings.Key]consistency.Volatility{
		rankings.KeyPoints: {StdDev: 8.7, CV: 0.33, Rating: consistency.RatingModerate},
		rankings.KeyThrees: {StdDev: 2.1, CV: 0.44, Rating: consistency.RatingHigh},
	}},
	1629627: {PlayerID: 1629627, Grade: consistency.GradeD, GamesAnalyzed: 9, Recent: consistency.Averages{Points: 23.4, Minutes: 31.0}, Volatility: map[rankings.Key]consistency.Volatility{
		rankings.KeyPoints: {StdDev: 11.5, CV: 0.5, Rating: consistency.RatingHigh},
	}},
}

var league = []teams.Team{
	{ID: 1, Name: "Dunk Tank", Abbreviation: "DUNK"},
	{ID: 2, Name: "Brick City", Abbreviation: "BRCK"},
	{ID: 3, Name: "Pick and Roll Call", Abbreviation: "PNR"},
	{ID: 4, Name: "Euro Steppers", Abbreviation: "EURO"},
}

var leagueInfo = teams.League{Name: "Fixture Hoops League", Season: 2025}

var standings = []teams.Standing{
	{Rank: 1, TeamID: 3, Name: "Pick and Roll Call", Owner: "Morgan", Wins: 9, Losses: 3, Ties: 0},
	{Rank: 2, TeamID: 1, Name: "Dunk Tank", Owner: "Riley", Wins: 7, Losses: 4, Ties: 1},
	{Rank: 3, TeamID: 4, Name: "Euro Steppers", Owner: "Jordan", Wins: 5, Losses: 6, Ties: 1},
	{Rank: 4, TeamID: 2, Name: "Brick City", Owner: "Casey", Wins: 2, Losses: 10, Ties: 0},
}

var pairings = [][2]int{{1, 2}, {3, 4}}

var currentCounts = map[int][]int{
	1: {4, 5, 3, 5, 4, 4, 3},
	2: {3, 4, 4, 3, 3, 4, 3},
	3: {5, 2, 5, 2, 5, 2, 3},
	4: {3, 4, 3, 4, 3, 4, 3},
}

var upcomingCounts = map[int][]int{
	1: {3, 3, 4, 0, 5, 3, 4},
	2: {4, 4, 4, 4, 4, 4, 4},
	3: {2, 5, 2, 5, 2, 5, 2},
	4: {5, 2, 5, 2, 5, 2, 2},
}

var rosters = map[int][]teams.RosterPlayer{
	1: {
		{ID: 203999, Name: "Nikola Jokic", Position: "C", InjuryStatus: "ACTIVE"},
		{ID: 1641705, Name: "Victor Wembanyama", Position: "PF, C", InjuryStatus: "ACTIVE"},
		{Name: "Rudy Gobert", Position: "C", InjuryStatus: "ACTIVE"},
		{Name: "Mikal Bridges", Position: "SF", InjuryStatus: "ACTIVE"},
	},
	2: {
		{ID: 201939, Name: "Stephen Curry", Position: "PG", InjuryStatus: "ACTIVE"},
		{ID: 1630169, Name: "Tyrese Haliburton", Position: "PG", InjuryStatus: "ACTIVE"},
		{Name: "Devin Booker", Position: "SG", InjuryStatus: "ACTIVE"},
		{Name: "Bam Adebayo", Position: "C", InjuryStatus: "ACTIVE"},
	},
	3: {
		{ID: 1628983, Name: "Shai Gilgeous-Alexander", Position: "PG, SG", InjuryStatus: "ACTIVE"},
		{ID: 1629627, Name: "Zion Williamson", Position: "PF", InjuryStatus: "OUT"},
		{Name: "Jayson Tatum", Position: "SF, PF", InjuryStatus: "ACTIVE"},
		{Name: "Domantas Sabonis", Position: "C", InjuryStatus: "ACTIVE"},
	},
	4: {
		{ID: 1629029, Name: "Luka Doncic", Position: "PG, SG", InjuryStatus: "DAY_TO_DAY"},
		{ID: 203954, Name: "Joel Embiid", Position: "C", InjuryStatus: "ACTIVE"},
		{Name: "Franz Wagner", Position: "SF", InjuryStatus: "ACTIVE"},
		{Name: "Jaren Jackson Jr.", Position: "PF, C", InjuryStatus: "ACTIVE"},
	},
}
