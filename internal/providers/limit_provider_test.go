package providers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/teststubs"
)

func TestRateLimitedSourceWaitsForToken(t *testing.T) {
	inner := &teststubs.StubSource{}
	src := NewRateLimitedSource(inner, "stub", 50, 1, nil)

	start := time.Now()
	_, err := src.FetchTeams(context.Background())
	require.NoError(t, err)
	_, err = src.FetchTeams(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	assert.Equal(t, int32(2), inner.TeamCalls.Load())
}

func TestRateLimitedSourceRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubSource{}
	src := NewRateLimitedSource(inner, "stub", 1, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.FetchRankings(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), inner.RankingCalls.Load())
}

func TestRateLimitedSourceHandlesNilInner(t *testing.T) {
	src := NewRateLimitedSource(nil, "stub", 1, 1, nil)

	_, err := src.FetchConsistency(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestRateLimitedSourceDefaults(t *testing.T) {
	src := NewRateLimitedSource(&teststubs.StubSource{}, "stub", 0, 0, nil).(*rateLimitedSource)
	assert.InDelta(t, defaultRatePerSecond, float64(src.limiter.Limit()), 0.001)
	assert.Equal(t, defaultBurst, src.limiter.Burst())
}
