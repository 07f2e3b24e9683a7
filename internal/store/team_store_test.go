package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainteams "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

func TestTeamStoreSetAndGet(t *testing.T) {
	s := NewTeamStore()
	s.SetTeams([]domainteams.Team{
		{ID: 3, Name: "Three"},
		{ID: 1, Name: "One"},
	})

	list := s.ListTeams()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 3, list[1].ID)

	team, ok := s.GetTeam(3)
	require.True(t, ok)
	assert.Equal(t, "Three", team.Name)

	_, ok = s.GetTeam(9)
	assert.False(t, ok)
}

func TestTeamStoreSetReplacesSnapshot(t *testing.T) {
	s := NewTeamStore()
	s.SetTeams([]domainteams.Team{{ID: 1}})
	s.SetTeams([]domainteams.Team{{ID: 2}})

	_, ok := s.GetTeam(1)
	assert.False(t, ok)
	_, ok = s.GetTeam(2)
	assert.True(t, ok)
}

func TestTeamStoreListReturnsCopy(t *testing.T) {
	s := NewTeamStore()
	s.SetTeams([]domainteams.Team{{ID: 1, Name: "original"}})

	list := s.ListTeams()
	list[0].Name = "mutated"

	team, _ := s.GetTeam(1)
	assert.Equal(t, "original", team.Name)
}
