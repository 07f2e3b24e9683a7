package strategy

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/teststubs"
)

func players(positions ...string) []teams.RosterPlayer {
	out := make([]teams.RosterPlayer, 0, len(positions))
	for i, pos := range positions {
		out = append(out, teams.RosterPlayer{ID: i + 1, Position: pos})
	}
	return out
}

func TestCountMultiPositionPlayers(t *testing.T) {
	c := Count(players("PG, SG", "SG/SF", "PF, C", "C"))
	assert.Equal(t, Counts{Guards: 2, Forwards: 2, Centers: 2, Players: 4}, c)
}

func TestAnalyzeCompositions(t *testing.T) {
	cases := []struct {
		name   string
		roster []teams.RosterPlayer
		want   Composition
		punt   string
	}{
		{"guard heavy", players("PG", "SG", "PG, SG", "SF", "C"), GuardHeavy, "Block/Rebound"},
		{"big man", players("C", "C", "PF, C", "PG"), BigMan, "FT%, 3PM"},
		{"balanced", players("PG", "SF", "C"), Balanced, "None (Balanced)"},
		{"two centers is not big man", players("C", "C", "SF"), Balanced, "None (Balanced)"},
		{"empty", nil, Balanced, "None (Balanced)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Analyze(tc.roster)
			assert.Equal(t, tc.want, got.Title)
			assert.Equal(t, tc.punt, got.Punt)
			assert.NotEmpty(t, got.Report)
			assert.NotContains(t, got.Report+got.WinStrategy+got.ImprovementPlan, "<b>")
		})
	}
}

func TestAnalyzeReportMentionsCounts(t *testing.T) {
	got := Analyze(players("PG", "SF", "C"))
	assert.True(t, strings.Contains(got.Report, "(1G / 1F / 1C)"))
}

func TestServiceInsight(t *testing.T) {
	src := &teststubs.StubSource{Rosters: map[int][]teams.RosterPlayer{
		3: players("PG", "SG", "G", "C"),
	}}
	svc := NewService(src, nil)

	got, err := svc.Insight(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TeamID)
	assert.Equal(t, GuardHeavy, got.Title)

	_, err = svc.Insight(context.Background(), 9)
	assert.ErrorIs(t, err, providers.ErrNotFound)

	src.RosterErr = providers.ErrDataUnavailable
	_, err = svc.Insight(context.Background(), 3)
	assert.ErrorIs(t, err, providers.ErrDataUnavailable)
}
