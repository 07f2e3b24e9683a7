package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

const providerName = "snapshot"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FSStore serves snapshot files written by Writer as a data source.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// Name identifies the store in logs and metrics.
func (s *FSStore) Name() string {
	return providerName
}

// FetchRankings reads {basePath}/rankings.json.
func (s *FSStore) FetchRankings(ctx context.Context) ([]rankings.Entity, error) {
	_ = ctx
	var out []rankings.Entity
	if err := s.load(RankingsPath(s.base()), &out, providers.ErrDataUnavailable); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchConsistency reads {basePath}/consistency/{id}.json; a missing file is ErrNotFound.
func (s *FSStore) FetchConsistency(ctx context.Context, playerID int) (consistency.Record, error) {
	_ = ctx
	var out consistency.Record
	if err := s.load(ConsistencyPath(s.base(), playerID), &out, providers.ErrNotFound); err != nil {
		return consistency.Record{}, err
	}
	if out.PlayerID == 0 {
		out.PlayerID = playerID
	}
	return out, nil
}

// FetchSchedule reads {basePath}/schedule/{window}.json and flags the highlighted team's matchup.
func (s *FSStore) FetchSchedule(ctx context.Context, q schedule.Query) (schedule.Page, error) {
	_ = ctx
	window := q.Window
	if window == "" {
		window = schedule.WindowCurrent
	}
	var page schedule.Page
	if err := s.load(SchedulePath(s.base(), window), &page, providers.ErrDataUnavailable); err != nil {
		return schedule.Page{}, err
	}
	for i := range page.Matchups {
		page.Matchups[i].IsMine = page.Matchups[i].Involves(q.Highlight)
	}
	return page, nil
}

// FetchTeams reads {basePath}/teams.json.
func (s *FSStore) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	var out []teams.Team
	if err := s.load(TeamsPath(s.base()), &out, providers.ErrDataUnavailable); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchRoster reads {basePath}/rosters/{teamID}.json; a missing file is ErrNotFound.
func (s *FSStore) FetchRoster(ctx context.Context, teamID int) ([]teams.RosterPlayer, error) {
	_ = ctx
	var out []teams.RosterPlayer
	if err := s.load(RosterPath(s.base(), teamID), &out, providers.ErrNotFound); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchStandings reads {basePath}/standings.json.
func (s *FSStore) FetchStandings(ctx context.Context) (teams.Standings, error) {
	_ = ctx
	var out teams.Standings
	if err := s.load(StandingsPath(s.base()), &out, providers.ErrDataUnavailable); err != nil {
		return teams.Standings{}, err
	}
	return out.Normalize(), nil
}

func (s *FSStore) base() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// load decodes path into payload. A missing file is reported as missing; everything else is unavailable.
func (s *FSStore) load(path string, payload any, missing error) error {
	if s == nil || s.basePath == "" {
		return fmt.Errorf("%s: store not configured: %w", providerName, providers.ErrDataUnavailable)
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %s: %w", providerName, path, missing)
		}
		return providers.Unavailable(providerName, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(payload); err != nil {
		return providers.Unavailable(providerName, fmt.Errorf("decode %s: %w", path, err))
	}
	return nil
}

var _ providers.DataSource = (*FSStore)(nil)
