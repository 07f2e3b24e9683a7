package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

type stubTeamStore struct {
	items []teams.Team
}

func (s *stubTeamStore) ListTeams() []teams.Team { return s.items }
func (s *stubTeamStore) GetTeam(id int) (teams.Team, bool) {
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}
func (s *stubTeamStore) SetTeams(items []teams.Team) { s.items = items }

func TestTeamsService(t *testing.T) {
	store := &stubTeamStore{items: []teams.Team{{ID: 1, Name: "Splash Bros"}}}
	svc := NewService(store)

	assert.Len(t, svc.Teams(), 1)
	team, ok := svc.TeamByID(1)
	assert.True(t, ok)
	assert.Equal(t, "Splash Bros", team.Name)

	svc.ReplaceTeams([]teams.Team{{ID: 2}})
	assert.Equal(t, []teams.Team{{ID: 2}}, store.items)
	_, ok = svc.TeamByID(1)
	assert.False(t, ok)
}

func TestIsHighlightable(t *testing.T) {
	svc := NewService(&stubTeamStore{items: []teams.Team{{ID: 4}}})
	assert.True(t, svc.IsHighlightable(0))
	assert.True(t, svc.IsHighlightable(4))
	assert.False(t, svc.IsHighlightable(5))
}
