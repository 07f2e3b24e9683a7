package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
)

func TestMapRecordFallsBackToRequestedID(t *testing.T) {
	rec := mapRecord(42, consistencyResponse{
		Grade:      " C ",
		Volatility: map[string]volatilityValue{"tov_std": {Std: 1.2, Rating: "HIGH"}},
	})
	assert.Equal(t, 42, rec.PlayerID)
	assert.Equal(t, consistency.GradeC, rec.Grade)
	assert.Equal(t, consistency.RatingHigh, rec.Volatility[rankings.KeyTurnovers].Rating)
}

func TestMapPageRecomputesDiffAndFillsEmptySlices(t *testing.T) {
	page := mapPage(scheduleResponse{Matchups: []matchupResponse{{
		HomeTeam: rosterSummary{ID: 1, TotalGames: 20},
		AwayTeam: rosterSummary{ID: 2, TotalGames: 23},
	}}})
	assert.Equal(t, -3, page.Matchups[0].Diff)
	assert.NotNil(t, page.Days)
	assert.NotNil(t, page.Matchups[0].Home.Daily)
}
