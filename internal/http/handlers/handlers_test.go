package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	appstandings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/standings"
	appstrategy "github.com/preston-bernstein/fantasy-hoops-service/internal/app/strategy"
	domainteams "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/poller"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/teststubs"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/testutil"
)

func newTestHandler(src *teststubs.StubSource, statusFn func() poller.Status) *Handler {
	return NewHandler(
		testutil.NewSessionStore(src),
		Services{
			Teams:     testutil.NewTeamService(src.Teams),
			Strategy:  appstrategy.NewService(src, nil),
			Standings: appstandings.NewService(src, nil),
		},
		nil,
		statusFn,
	)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&teststubs.StubSource{}, nil)
	h.sessions.Create()

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp healthResponse
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Sessions)
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(&teststubs.StubSource{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp errorBody
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "shutting down", resp.Error)
}

func TestReady(t *testing.T) {
	rr := testutil.Serve(http.HandlerFunc(newTestHandler(&teststubs.StubSource{}, nil).Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	status := poller.Status{LastSuccess: time.Now()}
	h := newTestHandler(&teststubs.StubSource{}, func() poller.Status { return status })
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	status = poller.Status{ConsecutiveFailures: 1, LastError: "upstream down"}
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp errorBody
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "upstream down", resp.Error)

	status = poller.Status{}
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.DecodeJSON(t, rr, &resp)
	assert.Equal(t, "not ready", resp.Error)
}

func TestTeams(t *testing.T) {
	h := newTestHandler(&teststubs.StubSource{Teams: testutil.SampleTeams()}, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var got []domainteams.Team
	testutil.DecodeJSON(t, rr, &got)
	assert.Len(t, got, 4)
	assert.Equal(t, 1, got[0].ID)
}

func strategyRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/teams/{teamID}/strategy", h.Strategy)
	return r
}

func TestStrategy(t *testing.T) {
	src := &teststubs.StubSource{Rosters: map[int][]domainteams.RosterPlayer{
		2: {{Name: "A", Position: "C"}, {Name: "B", Position: "C"}, {Name: "C", Position: "PF, C"}},
	}}
	router := strategyRouter(newTestHandler(src, nil))

	rr := testutil.Serve(router, http.MethodGet, "/teams/2/strategy", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var insight appstrategy.Insight
	testutil.DecodeJSON(t, rr, &insight)
	assert.Equal(t, appstrategy.BigMan, insight.Title)
	assert.Equal(t, 2, insight.TeamID)

	rr = testutil.Serve(router, http.MethodGet, "/teams/abc/strategy", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.Serve(router, http.MethodGet, "/teams/9/strategy", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	src.RosterErr = errors.New("boom")
	rr = testutil.Serve(router, http.MethodGet, "/teams/2/strategy", nil)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
}

func TestStandings(t *testing.T) {
	src := &teststubs.StubSource{Standings: domainteams.Standings{
		League: domainteams.League{Name: "Dynasty", Season: 2025},
		Teams: []domainteams.Standing{
			{Rank: 2, TeamID: 4, Name: "Second", Wins: 5, Losses: 5},
			{Rank: 1, TeamID: 1, Name: "First", Owner: "Alex", Wins: 9, Losses: 1},
		},
	}}
	h := newTestHandler(src, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Standings), http.MethodGet, "/standings", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var view appstandings.View
	testutil.DecodeJSON(t, rr, &view)
	assert.Equal(t, 2025, view.League.Season)
	assert.Len(t, view.Rows, 2)
	assert.Equal(t, "First", view.Rows[0].Name)
	assert.Equal(t, "0.900", view.Rows[0].WinPct)
	assert.Equal(t, "9-1-0", view.Rows[0].Record)

	src.StandingsErr = providers.ErrDataUnavailable
	rr = testutil.Serve(http.HandlerFunc(h.Standings), http.MethodGet, "/standings", nil)
	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestFallbackHandlers(t *testing.T) {
	h := newTestHandler(&teststubs.StubSource{}, nil)
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(h.NotFound), http.MethodGet, "/x", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(http.HandlerFunc(h.MethodNotAllowed), http.MethodPut, "/x", nil), http.StatusMethodNotAllowed)
}
