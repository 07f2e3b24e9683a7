package providers

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

const (
	defaultRatePerSecond = 5.0
	defaultBurst         = 5
)

// rateLimitedSource wraps a DataSource with a token bucket shared by every call.
type rateLimitedSource struct {
	next    DataSource
	limiter *rate.Limiter
	name    string
	logger  *slog.Logger
}

// NewRateLimitedSource returns a DataSource that admits at most rps calls per second with the given burst.
// Calls block until a token is available or ctx is done.
func NewRateLimitedSource(next DataSource, name string, rps float64, burst int, logger *slog.Logger) DataSource {
	if rps <= 0 {
		rps = defaultRatePerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &rateLimitedSource{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    name,
		logger:  logger,
	}
}

func (p *rateLimitedSource) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		return ErrDataUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "rate-limited fetch abandoned", slog.Any("error", err))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return nil
}

func (p *rateLimitedSource) FetchRankings(ctx context.Context) ([]rankings.Entity, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchRankings(ctx)
}

func (p *rateLimitedSource) FetchConsistency(ctx context.Context, playerID int) (consistency.Record, error) {
	if err := p.wait(ctx); err != nil {
		return consistency.Record{}, err
	}
	return p.next.FetchConsistency(ctx, playerID)
}

func (p *rateLimitedSource) FetchSchedule(ctx context.Context, q schedule.Query) (schedule.Page, error) {
	if err := p.wait(ctx); err != nil {
		return schedule.Page{}, err
	}
	return p.next.FetchSchedule(ctx, q)
}

func (p *rateLimitedSource) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx)
}

func (p *rateLimitedSource) FetchRoster(ctx context.Context, teamID int) ([]teams.RosterPlayer, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchRoster(ctx, teamID)
}

func (p *rateLimitedSource) FetchStandings(ctx context.Context) (teams.Standings, error) {
	if err := p.wait(ctx); err != nil {
		return teams.Standings{}, err
	}
	return p.next.FetchStandings(ctx)
}
