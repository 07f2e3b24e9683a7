package analytics

import (
	"math"
	"strings"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

func mapEntity(r playerRow) rankings.Entity {
	return rankings.Entity{
		ID:           r.PlayerID,
		Name:         strings.TrimSpace(r.PlayerName),
		Team:         r.Team,
		Minutes:      r.Minutes,
		Points:       r.Points,
		Rebounds:     r.Rebounds,
		Assists:      r.Assists,
		Threes:       r.Threes,
		Steals:       r.Steals,
		Blocks:       r.Blocks,
		FieldGoalPct: r.FGPct,
		FreeThrowPct: r.FTPct,
		Turnovers:    r.Turnovers,
		Value:        r.TotalZ,
		Rank:         r.Rank,
	}
}

func mapRecord(playerID int, r consistencyResponse) consistency.Record {
	vol := make(map[rankings.Key]consistency.Volatility, len(r.Volatility))
	for raw, v := range r.Volatility {
		key, ok := rankings.ParseKey(strings.TrimSuffix(strings.ToUpper(raw), volatilitySuffix))
		if !ok {
			continue
		}
		vol[key] = consistency.Volatility{
			StdDev: v.Std,
			CV:     v.CV,
			Rating: consistency.ParseRating(v.Rating),
		}
	}
	id := r.PlayerID
	if id == 0 {
		id = playerID
	}
	return consistency.Record{
		PlayerID:      id,
		Grade:         consistency.Grade(strings.TrimSpace(r.Grade)),
		GamesAnalyzed: r.GamesAnalyzed,
		Volatility:    vol,
		Recent: consistency.Averages{
			Points:  roundTenth(r.Recent.Points),
			Minutes: roundTenth(r.Recent.Minutes),
		},
	}
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func mapPage(r scheduleResponse) schedule.Page {
	matchups := make([]schedule.Matchup, 0, len(r.Matchups))
	for _, m := range r.Matchups {
		home := mapRoster(m.HomeTeam)
		away := mapRoster(m.AwayTeam)
		matchups = append(matchups, schedule.Matchup{
			Home:   home,
			Away:   away,
			Diff:   home.Total - away.Total,
			IsMine: m.IsMyMatchup,
		})
	}
	return schedule.Page{
		Period:   r.Period,
		Start:    r.StartDate,
		End:      r.EndDate,
		Days:     nonNil(r.Days),
		DayDates: nonNil(r.DayDates),
		Matchups: matchups,
	}
}

func mapRoster(r rosterSummary) schedule.Roster {
	daily := r.DailyCounts
	if daily == nil {
		daily = []int{}
	}
	return schedule.Roster{
		TeamID: r.ID,
		Name:   r.Name,
		Total:  r.TotalGames,
		Daily:  daily,
	}
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{ID: t.ID, Name: strings.TrimSpace(t.Name), Abbreviation: t.Abbrev}
}

func mapStandings(info leagueInfoResponse, rows []standingResponse) teams.Standings {
	out := teams.Standings{
		League: teams.League{Name: strings.TrimSpace(info.Name), Season: info.Season},
		Teams:  make([]teams.Standing, 0, len(rows)),
	}
	for _, r := range rows {
		out.Teams = append(out.Teams, teams.Standing{
			Rank:   r.Rank,
			TeamID: r.ID,
			Name:   strings.TrimSpace(r.Name),
			Owner:  strings.TrimSpace(r.Owner),
			Wins:   r.Wins,
			Losses: r.Losses,
			Ties:   r.Ties,
			WinPct: r.WinPct,
		})
	}
	return out.Normalize()
}

func mapRosterPlayer(p rosterPlayerResponse) teams.RosterPlayer {
	return teams.RosterPlayer{
		ID:           p.PlayerID,
		Name:         strings.TrimSpace(p.Name),
		Position:     p.Position,
		InjuryStatus: p.InjuryStatus,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
