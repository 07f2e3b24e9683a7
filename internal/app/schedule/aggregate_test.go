package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
)

func roster(id int, name string, total int, daily ...int) domainschedule.Roster {
	return domainschedule.Roster{TeamID: id, Name: name, Total: total, Daily: daily}
}

func TestAggregateHomeAdvantage(t *testing.T) {
	page := domainschedule.Page{
		Period: 5,
		Days:   []string{"Mon", "Tue", "Wed"},
		Matchups: []domainschedule.Matchup{{
			Home: roster(1, "Splash Bros", 28, 4, 0, 5),
			Away: roster(2, "Glass Cleaners", 24, 3, 2, 0),
		}},
	}

	got := Aggregate(page)
	require.Len(t, got.Matchups, 1)
	m := got.Matchups[0]
	assert.Equal(t, 4, m.Diff)
	assert.Equal(t, SideHome, m.Advantage.Side)
	assert.Equal(t, 4, m.Advantage.Magnitude)
	assert.Equal(t, "Splash Bros +4", m.Advantage.Label)
	assert.Equal(t, []Cell{
		{Day: "Mon", Count: 4, Active: true},
		{Day: "Tue", Count: 0, Active: false},
		{Day: "Wed", Count: 5, Active: true},
	}, m.HomeCells)
	assert.False(t, m.AwayCells[2].Active)
}

func TestAggregateRecomputesDiffAndKeepsOrder(t *testing.T) {
	page := domainschedule.Page{
		Matchups: []domainschedule.Matchup{
			{Home: roster(1, "A", 20), Away: roster(2, "B", 23), Diff: 99},
			{Home: roster(3, "C", 21), Away: roster(4, "D", 21), IsMine: true},
			{Home: roster(5, "E", 25), Away: roster(6, "F", 22)},
		},
	}

	got := Aggregate(page)
	require.Len(t, got.Matchups, 3)
	assert.Equal(t, -3, got.Matchups[0].Diff)
	assert.Equal(t, SideAway, got.Matchups[0].Advantage.Side)
	assert.Equal(t, 3, got.Matchups[0].Advantage.Magnitude)
	assert.Equal(t, "B +3", got.Matchups[0].Advantage.Label)

	assert.Equal(t, SideEven, got.Matchups[1].Advantage.Side)
	assert.Equal(t, "Even", got.Matchups[1].Advantage.Label)
	assert.True(t, got.Matchups[1].IsMine)

	assert.Equal(t, 5, got.Matchups[2].Home.TeamID)
	assert.NotNil(t, got.Days)
	assert.Empty(t, got.Matchups[2].HomeCells)
}

func TestClassifySignLaw(t *testing.T) {
	for home := 0; home <= 6; home++ {
		for away := 0; away <= 6; away++ {
			diff := home - away
			adv := Classify(diff, "H", "A")
			switch {
			case diff > 0:
				assert.Equal(t, SideHome, adv.Side)
				assert.Equal(t, diff, adv.Magnitude)
			case diff < 0:
				assert.Equal(t, SideAway, adv.Side)
				assert.Equal(t, -diff, adv.Magnitude)
			default:
				assert.Equal(t, SideEven, adv.Side)
				assert.Zero(t, adv.Magnitude)
			}
		}
	}
}

func TestGridUsesShorterLength(t *testing.T) {
	days := []string{"Mon", "Tue", "Wed", "Thu"}
	assert.Len(t, Grid(days, []int{1, 2}), 2)
	assert.Len(t, Grid(days[:1], []int{1, 2, 3}), 1)
	assert.Empty(t, Grid(nil, []int{1}))
	assert.NotNil(t, Grid(nil, nil))
}
