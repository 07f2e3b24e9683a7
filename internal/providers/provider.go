package providers

import (
	"context"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

// RankingSource supplies the scored player collection in its default rank order.
type RankingSource interface {
	FetchRankings(ctx context.Context) ([]rankings.Entity, error)
}

// ConsistencySource supplies the detail record for one player.
// It returns ErrNotFound when the player exists but has no record.
type ConsistencySource interface {
	FetchConsistency(ctx context.Context, playerID int) (consistency.Record, error)
}

// ScheduleSource supplies one matchup period. IsMine on each matchup reflects q.Highlight.
type ScheduleSource interface {
	FetchSchedule(ctx context.Context, q schedule.Query) (schedule.Page, error)
}

// TeamSource lists the league's fantasy teams.
type TeamSource interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// RosterSource lists the players on one fantasy team.
type RosterSource interface {
	FetchRoster(ctx context.Context, teamID int) ([]teams.RosterPlayer, error)
}

// StandingsSource supplies the league table and the league it belongs to.
type StandingsSource interface {
	FetchStandings(ctx context.Context) (teams.Standings, error)
}

// DataSource combines all source capabilities.
type DataSource interface {
	RankingSource
	ConsistencySource
	ScheduleSource
	TeamSource
	RosterSource
	StandingsSource
}
