package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/timeutil"
)

const (
	providerName = "fixture"
	firstPeriod  = 1
	periodDays   = 7
)

// Provider returns a static league useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// FetchRankings returns a deterministic ranking collection in rank order.
func (p *Provider) FetchRankings(ctx context.Context) ([]rankings.Entity, error) {
	_ = ctx
	return append([]rankings.Entity(nil), players...), nil
}

// FetchConsistency returns the fixture record for a player, or ErrNotFound.
func (p *Provider) FetchConsistency(ctx context.Context, playerID int) (consistency.Record, error) {
	_ = ctx
	rec, ok := records[playerID]
	if !ok {
		return consistency.Record{}, fmt.Errorf("%s: player %d: %w", providerName, playerID, providers.ErrNotFound)
	}
	return rec, nil
}

// FetchSchedule returns a seven-day period starting on the Monday of the current (or next) week.
func (p *Provider) FetchSchedule(ctx context.Context, q schedule.Query) (schedule.Page, error) {
	_ = ctx
	start := timeutil.WeekStart(p.now())
	period := firstPeriod
	counts := currentCounts
	if q.Window == schedule.WindowUpcoming {
		start = start.AddDate(0, 0, periodDays)
		period++
		counts = upcomingCounts
	}

	days, dates := timeutil.Days(start, periodDays)
	page := schedule.Page{
		Period:   period,
		Start:    timeutil.FormatDate(start),
		End:      timeutil.FormatDate(start.AddDate(0, 0, periodDays-1)),
		Days:     days,
		DayDates: dates,
	}

	for _, pair := range pairings {
		home := roster(pair[0], counts)
		away := roster(pair[1], counts)
		m := schedule.Matchup{Home: home, Away: away, Diff: home.Total - away.Total}
		m.IsMine = m.Involves(q.Highlight)
		page.Matchups = append(page.Matchups, m)
	}
	return page, nil
}

// FetchTeams returns the fixture league's teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return append([]teams.Team(nil), league...), nil
}

// FetchRoster returns a fixture roster, or ErrNotFound for unknown teams.
func (p *Provider) FetchRoster(ctx context.Context, teamID int) ([]teams.RosterPlayer, error) {
	_ = ctx
	r, ok := rosters[teamID]
	if !ok {
		return nil, fmt.Errorf("%s: team %d: %w", providerName, teamID, providers.ErrNotFound)
	}
	return append([]teams.RosterPlayer(nil), r...), nil
}

// FetchStandings returns the fixture league table with win percentages filled in.
func (p *Provider) FetchStandings(ctx context.Context) (teams.Standings, error) {
	_ = ctx
	return teams.Standings{League: leagueInfo, Teams: standings}.Normalize(), nil
}

func roster(teamID int, counts map[int][]int) schedule.Roster {
	daily := append([]int(nil), counts[teamID]...)
	total := 0
	for _, c := range daily {
		total += c
	}
	name := ""
	for _, t := range league {
		if t.ID == teamID {
			name = t.Name
		}
	}
	return schedule.Roster{TeamID: teamID, Name: name, Total: total, Daily: daily}
}

var _ providers.DataSource = (*Provider)(nil)
