package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconsistency "github.com/preston-bernstein/fantasy-hoops-service/internal/app/consistency"
	apprankings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/rankings"
	appschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/app/schedule"
	appstandings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/standings"
	appstrategy "github.com/preston-bernstein/fantasy-hoops-service/internal/app/strategy"
	domainrankings "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/http/handlers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/metrics"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/teststubs"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/testutil"
)

type sessionResponse struct {
	ID       string           `json:"id"`
	Rankings apprankings.View `json:"rankings"`
}

func newTestRouter(src *teststubs.StubSource, admin *handlers.AdminHandler) nethttp.Handler {
	h := handlers.NewHandler(
		testutil.NewSessionStore(src),
		handlers.Services{
			Teams:     testutil.NewTeamService(src.Teams),
			Strategy:  appstrategy.NewService(src, nil),
			Standings: appstandings.NewService(src, nil),
		},
		nil,
		nil,
	)
	return NewRouter(h, RouterConfig{
		Metrics:     metrics.NewRecorder(),
		CorsOrigins: []string{"http://localhost:3000"},
		Admin:       admin,
	})
}

func sampleSource() *teststubs.StubSource {
	return &teststubs.StubSource{
		Rankings: testutil.SampleRankings(),
		Page:     testutil.SamplePage(),
		Teams:    testutil.SampleTeams(),
	}
}

func createSession(t *testing.T, router nethttp.Handler) sessionResponse {
	t.Helper()
	rr := testutil.Serve(router, nethttp.MethodPost, "/sessions", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusCreated)
	var resp sessionResponse
	testutil.DecodeJSON(t, rr, &resp)
	require.NotEmpty(t, resp.ID)
	return resp
}

func viewIDs(v apprankings.View) []int {
	out := make([]int, 0, len(v.Rows))
	for _, r := range v.Rows {
		out = append(out, r.ID)
	}
	return out
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(sampleSource(), nil)
	rr := testutil.Serve(router, nethttp.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodPost, "/health", nil), nethttp.StatusMethodNotAllowed)
	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodGet, "/nope", nil), nethttp.StatusNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	src := sampleSource()
	router := newTestRouter(src, nil)

	sess := createSession(t, router)
	assert.Equal(t, apprankings.StatusReady, sess.Rankings.Status)
	assert.Equal(t, 3, sess.Rankings.Count)
	assert.Equal(t, []int{1, 2, 3}, viewIDs(sess.Rankings))

	rr := testutil.Serve(router, nethttp.MethodGet, "/sessions/"+sess.ID+"/rankings", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	rr = testutil.Serve(router, nethttp.MethodDelete, "/sessions/"+sess.ID, nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNoContent)
	rr = testutil.Serve(router, nethttp.MethodGet, "/sessions/"+sess.ID+"/rankings", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}

func TestSortRoute(t *testing.T) {
	router := newTestRouter(sampleSource(), nil)
	sess := createSession(t, router)
	path := "/sessions/" + sess.ID + "/rankings/sort"

	rr := testutil.ServeJSON(router, nethttp.MethodPost, path, `{"key":"TOTAL_Z"}`)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var view apprankings.View
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, []int{1, 2, 3}, viewIDs(view))
	assert.Equal(t, domainrankings.Descending, view.Sort.Direction)

	rr = testutil.ServeJSON(router, nethttp.MethodPost, path, `{"key":"tov"}`)
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, []int{1, 3, 2}, viewIDs(view))
	assert.Equal(t, 2, view.Rows[2].Rank)

	rr = testutil.ServeJSON(router, nethttp.MethodPost, path, `{"key":"TOV"}`)
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, domainrankings.Ascending, view.Sort.Direction)
	assert.Equal(t, []int{2, 3, 1}, viewIDs(view))

	rr = testutil.ServeJSON(router, nethttp.MethodPost, path, `{"key":""}`)
	testutil.DecodeJSON(t, rr, &view)
	assert.True(t, view.Sort.IsZero())

	testutil.AssertStatus(t, testutil.ServeJSON(router, nethttp.MethodPost, path, `{"key":"PLAYER_NAME"}`), nethttp.StatusBadRequest)
	testutil.AssertStatus(t, testutil.ServeJSON(router, nethttp.MethodPost, path, `not json`), nethttp.StatusBadRequest)
}

func TestExpandRoute(t *testing.T) {
	router := newTestRouter(sampleSource(), nil)
	sess := createSession(t, router)
	base := "/sessions/" + sess.ID + "/rankings/expand/"

	rr := testutil.Serve(router, nethttp.MethodPost, base+"2?wait=true", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var view apprankings.View
	testutil.DecodeJSON(t, rr, &view)
	require.NotNil(t, view.ExpandedID)
	assert.Equal(t, 2, *view.ExpandedID)
	require.NotNil(t, view.Rows[1].Detail)
	assert.Equal(t, appconsistency.StatusReady, view.Rows[1].Detail.Status)
	assert.Equal(t, "good", view.Rows[1].Detail.GradeClass)

	rr = testutil.Serve(router, nethttp.MethodPost, base+"2", nil)
	view = apprankings.View{}
	testutil.DecodeJSON(t, rr, &view)
	assert.Nil(t, view.ExpandedID)

	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodPost, base+"999", nil), nethttp.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodPost, base+"abc", nil), nethttp.StatusBadRequest)
}

func TestLoadRetryAfterBlockingError(t *testing.T) {
	src := sampleSource()
	src.RankingsErr = providers.ErrDataUnavailable
	router := newTestRouter(src, nil)

	sess := createSession(t, router)
	assert.Equal(t, apprankings.StatusError, sess.Rankings.Status)
	assert.NotEmpty(t, sess.Rankings.Error)

	loadPath := "/sessions/" + sess.ID + "/rankings/load"
	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodPost, loadPath, nil), nethttp.StatusBadGateway)

	src.RankingsErr = nil
	rr := testutil.Serve(router, nethttp.MethodPost, loadPath, nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var view apprankings.View
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, apprankings.StatusReady, view.Status)

	src.RankingsErr = providers.ErrDataUnavailable
	rr = testutil.Serve(router, nethttp.MethodPost, loadPath+"?force=true", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	view = apprankings.View{}
	testutil.DecodeJSON(t, rr, &view)
	assert.NotEmpty(t, view.Warning)
	assert.Equal(t, 3, view.Count)

	src.RankingsErr = nil
	rr = testutil.Serve(router, nethttp.MethodPost, loadPath, nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	view = apprankings.View{}
	testutil.DecodeJSON(t, rr, &view)
	assert.Empty(t, view.Warning)
}

func TestRefreshDetailRoute(t *testing.T) {
	src := sampleSource()
	src.ConsistencyErr = providers.ErrDataUnavailable
	router := newTestRouter(src, nil)
	sess := createSession(t, router)

	rr := testutil.Serve(router, nethttp.MethodPost, "/sessions/"+sess.ID+"/rankings/expand/1?wait=true", nil)
	var view apprankings.View
	testutil.DecodeJSON(t, rr, &view)
	require.NotNil(t, view.Rows[0].Detail)
	assert.Equal(t, appconsistency.StatusUnavailable, view.Rows[0].Detail.Status)

	src.ConsistencyErr = nil
	base := "/sessions/" + sess.ID + "/rankings/details/"
	rr = testutil.Serve(router, nethttp.MethodPost, base+"1/refresh?wait=true", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	view = apprankings.View{}
	testutil.DecodeJSON(t, rr, &view)
	require.NotNil(t, view.Rows[0].Detail)
	assert.Equal(t, appconsistency.StatusReady, view.Rows[0].Detail.Status)
	assert.Equal(t, 2, src.ConsistencyCallsFor(1))

	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodPost, base+"999/refresh", nil), nethttp.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodPost, base+"abc/refresh", nil), nethttp.StatusBadRequest)
}

func TestScheduleRoute(t *testing.T) {
	src := sampleSource()
	router := newTestRouter(src, nil)
	sess := createSession(t, router)
	path := "/sessions/" + sess.ID + "/schedule"

	rr := testutil.Serve(router, nethttp.MethodGet, path+"?window=current&highlight=2", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var page appschedule.Page
	testutil.DecodeJSON(t, rr, &page)
	require.Len(t, page.Matchups, 2)
	first := page.Matchups[0]
	assert.True(t, first.IsMine)
	assert.Equal(t, 4, first.Diff)
	assert.Equal(t, appschedule.SideHome, first.Advantage.Side)
	assert.Equal(t, "Splash Bros +4", first.Advantage.Label)
	assert.Len(t, first.HomeCells, 3)
	assert.False(t, first.HomeCells[1].Active)
	assert.Equal(t, appschedule.SideEven, page.Matchups[1].Advantage.Side)

	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodGet, path+"?window=next-month", nil), nethttp.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodGet, path+"?highlight=x", nil), nethttp.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodGet, path+"?highlight=99", nil), nethttp.StatusBadRequest)

	src.ScheduleErr = providers.ErrDataUnavailable
	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodGet, path, nil), nethttp.StatusBadGateway)
}

func TestStandingsRoute(t *testing.T) {
	src := sampleSource()
	src.Standings = testutil.SampleStandings()
	router := newTestRouter(src, nil)

	rr := testutil.Serve(router, nethttp.MethodGet, "/standings", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var view appstandings.View
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, "Test League", view.League.Name)
	require.Len(t, view.Rows, 4)
	assert.Equal(t, "Pick and Roll", view.Rows[0].Name)
	assert.Equal(t, "0.750", view.Rows[0].WinPct)
	assert.Equal(t, appstandings.PodiumGold, view.Rows[0].Podium)
	assert.Equal(t, "7-4-1", view.Rows[1].Record)
	assert.Equal(t, "0.625", view.Rows[1].WinPct)
	assert.Empty(t, view.Rows[3].Podium)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(sampleSource(), nil)

	req := httptest.NewRequest(nethttp.MethodOptions, "/sessions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", nethttp.MethodPost)
	rr := testutil.ServeRequest(router, req)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(nethttp.MethodOptions, "/sessions", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", nethttp.MethodPost)
	rr = testutil.ServeRequest(router, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminRouteMountedOnlyWhenConfigured(t *testing.T) {
	router := newTestRouter(sampleSource(), nil)
	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodPost, "/admin/snapshots/export", nil), nethttp.StatusNotFound)

	router = newTestRouter(sampleSource(), handlers.NewAdminHandler(nil, "secret", nil))
	testutil.AssertStatus(t, testutil.Serve(router, nethttp.MethodPost, "/admin/snapshots/export", nil), nethttp.StatusUnauthorized)
}
