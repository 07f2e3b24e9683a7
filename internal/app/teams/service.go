package teams

import "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"

// Store defines the contract for persisting and retrieving league teams.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id int) (teams.Team, bool)
	SetTeams([]teams.Team)
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns the current set of teams in ID order.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id int) (teams.Team, bool) {
	return s.store.GetTeam(id)
}

// IsHighlightable reports whether id may be used as a schedule highlight. Zero means no highlight.
func (s *Service) IsHighlightable(id int) bool {
	if id == 0 {
		return true
	}
	_, ok := s.store.GetTeam(id)
	return ok
}

// ReplaceTeams swaps the in-memory teams with a new snapshot.
func (s *Service) ReplaceTeams(items []teams.Team) {
	s.store.SetTeams(items)
}
