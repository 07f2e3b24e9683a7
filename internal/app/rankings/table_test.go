package rankings

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconsistency "github.com/preston-bernstein/fantasy-hoops-service/internal/app/consistency"
	domainconsistency "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	domainrankings "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/teststubs"
)

func newLoadedTable(t *testing.T, src *teststubs.StubSource) *Table {
	t.Helper()
	table := NewTable(src, appconsistency.NewCache(src, nil, nil), nil)
	require.NoError(t, table.Load(context.Background()))
	return table
}

func rowIDs(v View) []int {
	out := make([]int, 0, len(v.Rows))
	for _, r := range v.Rows {
		out = append(out, r.ID)
	}
	return out
}

func TestSetSortValueTieKeepsInputOrder(t *testing.T) {
	src := &teststubs.StubSource{Rankings: []domainrankings.Entity{
		{ID: 1, Points: 30, Value: 2.1, Rank: 1},
		{ID: 2, Points: 25, Value: 2.1, Rank: 2},
	}}
	table := newLoadedTable(t, src)

	sel := table.SetSort(domainrankings.KeyValue)
	assert.Equal(t, domainrankings.Descending, sel.Direction)
	assert.Equal(t, []int{1, 2}, rowIDs(table.View()))
}

func TestSetSortTogglesAndKeepsSourceRank(t *testing.T) {
	src := &teststubs.StubSource{Rankings: sampleEntities()}
	table := newLoadedTable(t, src)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, rowIDs(table.View()))

	table.SetSort(domainrankings.KeyTurnovers)
	v := table.View()
	assert.Equal(t, []int{1, 3, 5, 2, 4}, rowIDs(v))
	assert.Equal(t, 3, v.Rows[1].Rank)
	assert.Equal(t, "TOV", v.Rows[0].Sorted)

	assert.Equal(t, domainrankings.Ascending, table.SetSort(domainrankings.KeyTurnovers).Direction)
	assert.Equal(t, []int{4, 2, 5, 1, 3}, rowIDs(table.View()))

	assert.Equal(t, domainrankings.Descending, table.SetSort(domainrankings.KeyTurnovers).Direction)

	table.SetSort("")
	v = table.View()
	assert.True(t, v.Sort.IsZero())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, rowIDs(v))
	assert.Empty(t, v.Rows[0].Sorted)
}

func TestToggleExpandWhilePendingFetchesOnce(t *testing.T) {
	src := &teststubs.StubSource{
		Rankings: []domainrankings.Entity{{ID: 7, Rank: 1}, {ID: 8, Rank: 2}},
		Gate:     make(chan struct{}),
	}
	table := newLoadedTable(t, src)
	ctx := context.Background()

	open, err := table.ToggleExpand(ctx, 7)
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, appconsistency.StatusLoading, table.View().Rows[0].Detail.Status)

	open, err = table.ToggleExpand(ctx, 7)
	require.NoError(t, err)
	assert.False(t, open)
	assert.Nil(t, table.View().ExpandedID)

	open, err = table.ToggleExpand(ctx, 7)
	require.NoError(t, err)
	assert.True(t, open)

	close(src.Gate)
	require.NoError(t, table.AwaitExpanded(ctx))

	v := table.View()
	require.NotNil(t, v.ExpandedID)
	assert.Equal(t, 7, *v.ExpandedID)
	assert.True(t, v.Rows[0].Expanded)
	assert.Equal(t, appconsistency.StatusReady, v.Rows[0].Detail.Status)
	assert.Equal(t, 1, src.ConsistencyCallsFor(7))
}

func TestDetailCarriesRecentAverages(t *testing.T) {
	src := &teststubs.StubSource{
		Rankings: []domainrankings.Entity{{ID: 7, Rank: 1}, {ID: 8, Rank: 2}},
		Records: map[int]domainconsistency.Record{
			7: {PlayerID: 7, Grade: domainconsistency.GradeB, GamesAnalyzed: 20, Recent: domainconsistency.Averages{Points: 18.44, Minutes: 31}},
		},
	}
	table := newLoadedTable(t, src)
	ctx := context.Background()

	_, _ = table.ToggleExpand(ctx, 7)
	require.NoError(t, table.AwaitExpanded(ctx))
	detail := table.View().Rows[0].Detail
	require.NotNil(t, detail)
	assert.Equal(t, "18.4", detail.RecentPoints)
	assert.Equal(t, "31.0", detail.RecentMinutes)

	_, _ = table.ToggleExpand(ctx, 8)
	require.NoError(t, table.AwaitExpanded(ctx))
	detail = table.View().Rows[1].Detail
	require.NotNil(t, detail)
	assert.Empty(t, detail.RecentPoints)
}

func TestReexpandServesCachedDetail(t *testing.T) {
	src := &teststubs.StubSource{
		Rankings: []domainrankings.Entity{{ID: 7, Rank: 1}},
		Records: map[int]domainconsistency.Record{7: {
			PlayerID: 7,
			Grade:    domainconsistency.GradeAPlus,
			Volatility: map[domainrankings.Key]domainconsistency.Volatility{
				domainrankings.KeyRebounds: {StdDev: 2, Rating: domainconsistency.RatingHigh},
				domainrankings.KeyPoints:   {StdDev: 4, Rating: domainconsistency.RatingLow},
			},
		}},
	}
	table := newLoadedTable(t, src)
	ctx := context.Background()

	_, _ = table.ToggleExpand(ctx, 7)
	require.NoError(t, table.AwaitExpanded(ctx))
	for i := 0; i < 4; i++ {
		_, _ = table.ToggleExpand(ctx, 7)
	}

	v := table.View()
	detail := v.Rows[0].Detail
	require.NotNil(t, detail)
	assert.Equal(t, appconsistency.StatusReady, detail.Status)
	assert.Equal(t, "A+", detail.Grade)
	assert.Equal(t, "excellent", detail.GradeClass)
	require.Len(t, detail.Volatility, 2)
	assert.Equal(t, "PTS", detail.Volatility[0].Category)
	assert.Equal(t, "stable", detail.Volatility[0].RatingClass)
	assert.Equal(t, "volatile", detail.Volatility[1].RatingClass)
	assert.Equal(t, 1, src.ConsistencyCallsFor(7))
}

func TestExpandingAnotherRowCollapsesTheFirst(t *testing.T) {
	src := &teststubs.StubSource{Rankings: sampleEntities()}
	table := newLoadedTable(t, src)
	ctx := context.Background()

	_, _ = table.ToggleExpand(ctx, 1)
	_, _ = table.ToggleExpand(ctx, 3)

	id, ok := table.Expanded()
	assert.True(t, ok)
	assert.Equal(t, 3, id)

	expanded := 0
	for _, r := range table.View().Rows {
		if r.Expanded {
			expanded++
			assert.Equal(t, 3, r.ID)
		} else {
			assert.Nil(t, r.Detail)
		}
	}
	assert.Equal(t, 1, expanded)
}

func TestToggleExpandUnknownPlayer(t *testing.T) {
	table := newLoadedTable(t, &teststubs.StubSource{Rankings: sampleEntities()})
	_, err := table.ToggleExpand(context.Background(), 404)
	assert.ErrorIs(t, err, providers.ErrNotFound)
}

func TestDetailFailureStaysInRow(t *testing.T) {
	src := &teststubs.StubSource{Rankings: sampleEntities(), ConsistencyErr: providers.ErrNotFound}
	table := newLoadedTable(t, src)

	_, _ = table.ToggleExpand(context.Background(), 2)
	require.NoError(t, table.AwaitExpanded(context.Background()))

	v := table.View()
	assert.Equal(t, StatusReady, v.Status)
	assert.Empty(t, v.Error)
	detail := v.Rows[1].Detail
	require.NotNil(t, detail)
	assert.Equal(t, appconsistency.StatusUnavailable, detail.Status)
	assert.Equal(t, noDataMessage, detail.Message)
	assert.True(t, detail.NotFound)
}

func TestLoadIsIdempotentAndReloadRefetches(t *testing.T) {
	src := &teststubs.StubSource{Rankings: sampleEntities()}
	table := newLoadedTable(t, src)

	require.NoError(t, table.Load(context.Background()))
	assert.Equal(t, int32(1), src.RankingCalls.Load())

	require.NoError(t, table.Reload(context.Background()))
	assert.Equal(t, int32(2), src.RankingCalls.Load())
}

func TestLoadFailureIsBlockingUntilRetried(t *testing.T) {
	src := &teststubs.StubSource{RankingsErr: providers.ErrDataUnavailable}
	table := NewTable(src, nil, nil)
	assert.Equal(t, StatusLoading, table.View().Status)

	err := table.Load(context.Background())
	assert.ErrorIs(t, err, providers.ErrDataUnavailable)
	v := table.View()
	assert.Equal(t, StatusError, v.Status)
	assert.NotEmpty(t, v.Error)
	assert.Empty(t, v.Rows)

	src.RankingsErr = nil
	src.Rankings = sampleEntities()
	require.NoError(t, table.Load(context.Background()))
	v = table.View()
	assert.Equal(t, StatusReady, v.Status)
	assert.Empty(t, v.Error)
	assert.Equal(t, 5, v.Count)
}

func TestReloadFailureKeepsPriorCollection(t *testing.T) {
	src := &teststubs.StubSource{Rankings: sampleEntities()}
	table := newLoadedTable(t, src)
	table.SetSort(domainrankings.KeyPoints)

	src.RankingsErr = providers.ErrDataUnavailable
	assert.Error(t, table.Reload(context.Background()))

	v := table.View()
	assert.Equal(t, StatusReady, v.Status)
	assert.NotEmpty(t, v.Warning)
	assert.Equal(t, 5, v.Count)
	assert.Equal(t, domainrankings.KeyPoints, v.Sort.Key)
}

func TestLoadAfterFailedReloadClearsWarning(t *testing.T) {
	src := &teststubs.StubSource{Rankings: sampleEntities()}
	table := newLoadedTable(t, src)

	src.RankingsErr = providers.ErrDataUnavailable
	require.Error(t, table.Reload(context.Background()))
	require.NotEmpty(t, table.View().Warning)

	require.NoError(t, table.Load(context.Background()))
	v := table.View()
	assert.Equal(t, StatusReady, v.Status)
	assert.Empty(t, v.Warning)
	assert.Equal(t, int32(2), src.RankingCalls.Load())
}

func TestRefreshDetailRefetchesExpandedRow(t *testing.T) {
	src := &teststubs.StubSource{Rankings: sampleEntities(), ConsistencyErr: providers.ErrDataUnavailable}
	table := newLoadedTable(t, src)

	_, _ = table.ToggleExpand(context.Background(), 3)
	require.NoError(t, table.AwaitExpanded(context.Background()))
	require.Equal(t, appconsistency.StatusUnavailable, table.View().Rows[2].Detail.Status)

	src.ConsistencyErr = nil
	require.NoError(t, table.RefreshDetail(context.Background(), 3))
	require.NoError(t, table.AwaitExpanded(context.Background()))
	assert.Equal(t, appconsistency.StatusReady, table.View().Rows[2].Detail.Status)

	assert.ErrorIs(t, table.RefreshDetail(context.Background(), 404), providers.ErrNotFound)
}

func TestReloadDropsExpandedRowThatDisappeared(t *testing.T) {
	src := &teststubs.StubSource{Rankings: sampleEntities()}
	table := newLoadedTable(t, src)
	_, _ = table.ToggleExpand(context.Background(), 5)

	src.Rankings = sampleEntities()[:2]
	require.NoError(t, table.Reload(context.Background()))
	_, ok := table.Expanded()
	assert.False(t, ok)
}

type gatedRankings struct {
	calls atomic.Int32
	gate  chan struct{}
	items []domainrankings.Entity
}

func (g *gatedRankings) FetchRankings(ctx context.Context) ([]domainrankings.Entity, error) {
	g.calls.Add(1)
	<-g.gate
	return g.items, nil
}

func TestConcurrentLoadsShareOneFetch(t *testing.T) {
	src := &gatedRankings{gate: make(chan struct{}), items: sampleEntities()}
	table := NewTable(src, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, table.Load(context.Background()))
		}()
	}
	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)
	close(src.gate)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, StatusReady, table.View().Status)
}

func TestRowFormatting(t *testing.T) {
	src := &teststubs.StubSource{Rankings: []domainrankings.Entity{{
		ID: 1, Name: "Nikola Jokic", Team: "DEN", Minutes: 34.61, Points: 26.44, FieldGoalPct: 0.583, Value: 11.271, Rank: 1,
	}}}
	row := newLoadedTable(t, src).View().Rows[0]
	assert.Equal(t, "34.6", row.Minutes)
	assert.Equal(t, "26.4", row.Stats["PTS"])
	assert.Equal(t, "58.3%", row.Stats["FG_PCT"])
	assert.Equal(t, "11.27", row.Value)
	assert.Equal(t, TierElite, row.ValueTier)
	assert.Len(t, row.Stats, len(domainrankings.Categories))
}
