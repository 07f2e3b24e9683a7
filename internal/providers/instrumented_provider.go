package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/metrics"
)

// instrumentedSource records latency, errors, and rate-limit hits for every call.
type instrumentedSource struct {
	next    DataSource
	name    string
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewInstrumentedSource wraps next so each call is recorded under the given provider name.
func NewInstrumentedSource(next DataSource, name string, recorder *metrics.Recorder, logger *slog.Logger) DataSource {
	if name == "" {
		name = "provider"
	}
	return &instrumentedSource{next: next, name: name, metrics: recorder, logger: logger}
}

func observe[T any](ctx context.Context, p *instrumentedSource, op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	out, err := fn()
	elapsed := time.Since(start)

	p.metrics.RecordProviderAttempt(p.name, elapsed, err)
	if rlErr, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.name, rlErr.RetryAfter)
	}
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider fetch failed",
			slog.String(logging.FieldOperation, op),
			slog.Duration("duration", elapsed),
			slog.Any("error", err),
		)
	}
	return out, err
}

func (p *instrumentedSource) FetchRankings(ctx context.Context) ([]rankings.Entity, error) {
	return observe(ctx, p, "rankings", func() ([]rankings.Entity, error) {
		return p.next.FetchRankings(ctx)
	})
}

func (p *instrumentedSource) FetchConsistency(ctx context.Context, playerID int) (consistency.Record, error) {
	return observe(ctx, p, "consistency", func() (consistency.Record, error) {
		return p.next.FetchConsistency(ctx, playerID)
	})
}

func (p *instrumentedSource) FetchSchedule(ctx context.Context, q schedule.Query) (schedule.Page, error) {
	return observe(ctx, p, "schedule", func() (schedule.Page, error) {
		return p.next.FetchSchedule(ctx, q)
	})
}

func (p *instrumentedSource) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return observe(ctx, p, "teams", func() ([]teams.Team, error) {
		return p.next.FetchTeams(ctx)
	})
}

func (p *instrumentedSource) FetchRoster(ctx context.Context, teamID int) ([]teams.RosterPlayer, error) {
	return observe(ctx, p, "roster", func() ([]teams.RosterPlayer, error) {
		return p.next.FetchRoster(ctx, teamID)
	})
}

func (p *instrumentedSource) FetchStandings(ctx context.Context) (teams.Standings, error) {
	return observe(ctx, p, "standings", func() (teams.Standings, error) {
		return p.next.FetchStandings(ctx)
	})
}
