package testutil

import (
	"time"

	appconsistency "github.com/preston-bernstein/fantasy-hoops-service/internal/app/consistency"
	apprankings "github.com/preston-bernstein/fantasy-hoops-service/internal/app/rankings"
	appschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/app/schedule"
	appteams "github.com/preston-bernstein/fantasy-hoops-service/internal/app/teams"
	domainteams "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/store"
)

// NewSessionStore builds a session store whose sessions read from source.
func NewSessionStore(source providers.DataSource) *store.SessionStore {
	return store.NewSessionStore(time.Hour, func() (*apprankings.Table, *appschedule.View) {
		details := appconsistency.NewCache(source, nil, nil)
		return apprankings.NewTable(source, details, nil), appschedule.NewView(source, nil, nil)
	})
}

// NewTeamService builds a team service backed by an in-memory store preloaded with items.
func NewTeamService(items []domainteams.Team) *appteams.Service {
	ts := store.NewTeamStore()
	if len(items) > 0 {
		ts.SetTeams(items)
	}
	return appteams.NewService(ts)
}
