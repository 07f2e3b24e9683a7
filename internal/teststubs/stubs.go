package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

// StubSource is a test double for providers.DataSource.
// Records missing from Records resolve to a grade-B record unless ConsistencyErr is set.
type StubSource struct {
	Rankings    []rankings.Entity
	RankingsErr error

	Records        map[int]consistency.Record
	ConsistencyErr error
	// Gate, when non-nil, blocks FetchConsistency until it is closed or ctx is done.
	Gate chan struct{}

	Page        schedule.Page
	ScheduleErr error
	// ScheduleHook, when set, replaces the default schedule behavior.
	ScheduleHook func(ctx context.Context, q schedule.Query) (schedule.Page, error)

	Teams    []teams.Team
	TeamsErr error

	Rosters   map[int][]teams.RosterPlayer
	RosterErr error

	Standings    teams.Standings
	StandingsErr error

	RankingCalls     atomic.Int32
	ConsistencyCalls atomic.Int32
	ScheduleCalls    atomic.Int32
	TeamCalls        atomic.Int32
	RosterCalls      atomic.Int32
	StandingsCalls   atomic.Int32

	mu        sync.Mutex
	perPlayer map[int]int
}

// FetchRankings returns a copy of Rankings.
func (s *StubSource) FetchRankings(ctx context.Context) ([]rankings.Entity, error) {
	_ = ctx
	s.RankingCalls.Add(1)
	if s.RankingsErr != nil {
		return nil, s.RankingsErr
	}
	return append([]rankings.Entity(nil), s.Rankings...), nil
}

// FetchConsistency waits on Gate, then returns the configured record or error.
func (s *StubSource) FetchConsistency(ctx context.Context, playerID int) (consistency.Record, error) {
	s.ConsistencyCalls.Add(1)
	s.mu.Lock()
	if s.perPlayer == nil {
		s.perPlayer = make(map[int]int)
	}
	s.perPlayer[playerID]++
	s.mu.Unlock()

	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return consistency.Record{}, ctx.Err()
		}
	}
	if s.ConsistencyErr != nil {
		return consistency.Record{}, s.ConsistencyErr
	}
	if rec, ok := s.Records[playerID]; ok {
		return rec, nil
	}
	return consistency.Record{PlayerID: playerID, Grade: consistency.GradeB}, nil
}

// ConsistencyCallsFor returns how many fetches were issued for one player.
func (s *StubSource) ConsistencyCallsFor(playerID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.perPlayer[playerID]
}

// FetchSchedule returns Page with IsMine recomputed for the query's highlight.
func (s *StubSource) FetchSchedule(ctx context.Context, q schedule.Query) (schedule.Page, error) {
	s.ScheduleCalls.Add(1)
	if s.ScheduleHook != nil {
		return s.ScheduleHook(ctx, q)
	}
	if s.ScheduleErr != nil {
		return schedule.Page{}, s.ScheduleErr
	}
	page := s.Page
	page.Matchups = append([]schedule.Matchup(nil), s.Page.Matchups...)
	for i := range page.Matchups {
		page.Matchups[i].IsMine = page.Matchups[i].Involves(q.Highlight)
	}
	return page, nil
}

// FetchTeams returns Teams or TeamsErr.
func (s *StubSource) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.TeamCalls.Add(1)
	if s.TeamsErr != nil {
		return nil, s.TeamsErr
	}
	return append([]teams.Team(nil), s.Teams...), nil
}

// FetchRoster returns the roster stored for teamID.
func (s *StubSource) FetchRoster(ctx context.Context, teamID int) ([]teams.RosterPlayer, error) {
	_ = ctx
	s.RosterCalls.Add(1)
	if s.RosterErr != nil {
		return nil, s.RosterErr
	}
	return append([]teams.RosterPlayer(nil), s.Rosters[teamID]...), nil
}

// FetchStandings returns a copy of Standings.
func (s *StubSource) FetchStandings(ctx context.Context) (teams.Standings, error) {
	_ = ctx
	s.StandingsCalls.Add(1)
	if s.StandingsErr != nil {
		return teams.Standings{}, s.StandingsErr
	}
	out := s.Standings
	out.Teams = append([]teams.Standing(nil), s.Standings.Teams...)
	return out, nil
}
