package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

const defaultTTL = 10 * time.Minute

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache keys
const (
	rankingsKey  = "rankings"
	teamsKey     = "teams"
	standingsKey = "standings"
)

func consistencyKey(playerID int) string {
	return fmt.Sprintf("consistency:%d", playerID)
}

// Source is a read-through cache for rankings, consistency records, the team list, and standings.
// Schedules and rosters pass straight through.
type Source struct {
	next   providers.DataSource
	kv     KV
	ttl    time.Duration
	logger *slog.Logger
}

// New wraps next with a cache backed by kv.
func New(next providers.DataSource, kv KV, ttl time.Duration, logger *slog.Logger) *Source {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Source{next: next, kv: kv, ttl: ttl, logger: logger}
}

func readThrough[T any](ctx context.Context, s *Source, key string, fetch func() (T, error)) (T, error) {
	if s.kv != nil {
		data, err := s.kv.Get(ctx, key)
		switch {
		case err == nil:
			var out T
			decodeErr := json.Unmarshal(data, &out)
			if decodeErr == nil {
				logging.Debug(logging.FromContext(ctx, s.logger), "cache hit", "key", key)
				return out, nil
			}
			s.warn(ctx, "cache entry unreadable", key, decodeErr)
		case errors.Is(err, ErrMiss):
			logging.Debug(logging.FromContext(ctx, s.logger), "cache miss", "key", key)
		default:
			s.warn(ctx, "cache read failed", key, err)
		}
	}

	out, err := fetch()
	if err != nil {
		return out, err
	}

	if s.kv != nil {
		if data, encodeErr := json.Marshal(out); encodeErr != nil {
			s.warn(ctx, "cache encode failed", key, encodeErr)
		} else if setErr := s.kv.Set(ctx, key, data, s.ttl); setErr != nil {
			s.warn(ctx, "cache write failed", key, setErr)
		}
	}
	return out, nil
}

func (s *Source) warn(ctx context.Context, msg, key string, err error) {
	logger := logging.FromContext(ctx, s.logger)
	logging.Warn(logger, msg, "key", key, "error", err)
}

// FetchRankings serves the rankings from cache when present.
func (s *Source) FetchRankings(ctx context.Context) ([]rankings.Entity, error) {
	return readThrough(ctx, s, rankingsKey, func() ([]rankings.Entity, error) {
		return s.next.FetchRankings(ctx)
	})
}

// FetchConsistency serves a player's record from cache when present. Misses upstream are not cached.
func (s *Source) FetchConsistency(ctx context.Context, playerID int) (consistency.Record, error) {
	return readThrough(ctx, s, consistencyKey(playerID), func() (consistency.Record, error) {
		return s.next.FetchConsistency(ctx, playerID)
	})
}

// FetchSchedule is never cached.
func (s *Source) FetchSchedule(ctx context.Context, q schedule.Query) (schedule.Page, error) {
	return s.next.FetchSchedule(ctx, q)
}

// FetchTeams serves the team list from cache when present.
func (s *Source) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return readThrough(ctx, s, teamsKey, func() ([]teams.Team, error) {
		return s.next.FetchTeams(ctx)
	})
}

// FetchRoster is never cached.
func (s *Source) FetchRoster(ctx context.Context, teamID int) ([]teams.RosterPlayer, error) {
	return s.next.FetchRoster(ctx, teamID)
}

// FetchStandings serves the league table from cache when present.
func (s *Source) FetchStandings(ctx context.Context) (teams.Standings, error) {
	return readThrough(ctx, s, standingsKey, func() (teams.Standings, error) {
		return s.next.FetchStandings(ctx)
	})
}

var _ providers.DataSource = (*Source)(nil)
