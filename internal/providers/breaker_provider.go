package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

const (
	defaultBreakerThreshold = 5
	defaultBreakerTimeout   = 30 * time.Second
)

// breakerSource stops calling the upstream after consecutive failures until the breaker's timeout elapses.
type breakerSource struct {
	next    DataSource
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerSource wraps next with a circuit breaker that opens after threshold consecutive failures.
// ErrNotFound and caller cancellation do not count as failures. Rejections while open return ErrDataUnavailable.
func NewBreakerSource(next DataSource, name string, threshold int, timeout time.Duration, logger *slog.Logger) DataSource {
	if threshold <= 0 {
		threshold = defaultBreakerThreshold
	}
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(threshold)
		},
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logWithProvider(context.Background(), logger, slog.LevelWarn, name, "circuit breaker state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}
	return &breakerSource{
		next:    next,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

func countsAsSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, context.Canceled)
}

func execute[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	out, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%s: %w: %w", cb.Name(), ErrDataUnavailable, err)
		}
		return zero, err
	}
	v, _ := out.(T)
	return v, nil
}

// State reports the breaker state, for readiness and tests.
func (p *breakerSource) State() gobreaker.State {
	return p.breaker.State()
}

func (p *breakerSource) FetchRankings(ctx context.Context) ([]rankings.Entity, error) {
	return execute(p.breaker, func() ([]rankings.Entity, error) {
		return p.next.FetchRankings(ctx)
	})
}

func (p *breakerSource) FetchConsistency(ctx context.Context, playerID int) (consistency.Record, error) {
	return execute(p.breaker, func() (consistency.Record, error) {
		return p.next.FetchConsistency(ctx, playerID)
	})
}

func (p *breakerSource) FetchSchedule(ctx context.Context, q schedule.Query) (schedule.Page, error) {
	return execute(p.breaker, func() (schedule.Page, error) {
		return p.next.FetchSchedule(ctx, q)
	})
}

func (p *breakerSource) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	return execute(p.breaker, func() ([]teams.Team, error) {
		return p.next.FetchTeams(ctx)
	})
}

func (p *breakerSource) FetchRoster(ctx context.Context, teamID int) ([]teams.RosterPlayer, error) {
	return execute(p.breaker, func() ([]teams.RosterPlayer, error) {
		return p.next.FetchRoster(ctx, teamID)
	})
}

func (p *breakerSource) FetchStandings(ctx context.Context) (teams.Standings, error) {
	return execute(p.breaker, func() (teams.Standings, error) {
		return p.next.FetchStandings(ctx)
	})
}
