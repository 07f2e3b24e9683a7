package strategy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

// Service builds roster insights from a roster source.
type Service struct {
	source providers.RosterSource
	logger *slog.Logger
}

// NewService constructs a Service.
func NewService(source providers.RosterSource, logger *slog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Insight fetches the team's roster and analyzes it. Empty rosters are reported as not found.
func (s *Service) Insight(ctx context.Context, teamID int) (Insight, error) {
	roster, err := s.source.FetchRoster(ctx, teamID)
	if err != nil {
		return Insight{}, err
	}
	if len(roster) == 0 {
		return Insight{}, fmt.Errorf("team %d roster: %w", teamID, providers.ErrNotFound)
	}
	insight := Analyze(roster)
	insight.TeamID = teamID
	logging.Info(logging.FromContext(ctx, s.logger), "roster insight built",
		logging.FieldTeamID, teamID,
		logging.FieldCount, len(roster),
		"composition", insight.Title,
	)
	return insight, nil
}
