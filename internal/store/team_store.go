package store

import (
	"slices"
	"sync"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

// TeamStore keeps a thread-safe snapshot of league teams in memory.
type TeamStore struct {
	mu    sync.RWMutex
	teams map[int]teams.Team
}

// NewTeamStore constructs an empty TeamStore.
func NewTeamStore() *TeamStore {
	return &TeamStore{
		teams: make(map[int]teams.Team),
	}
}

// ListTeams returns a copy of the current teams ordered by ID.
func (s *TeamStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	slices.SortFunc(result, func(a, b teams.Team) int { return a.ID - b.ID })
	return result
}

// GetTeam retrieves a team by ID.
func (s *TeamStore) GetTeam(id int) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// SetTeams replaces the existing teams with a new snapshot.
func (s *TeamStore) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[int]teams.Team, len(items))
	for _, t := range items {
		s.teams[t.ID] = t
	}
}
