package standings

import (
	"context"
	"fmt"
	"log/slog"

	domainteams "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

// Podium classes for the top three places.
const (
	PodiumGold   = "gold"
	PodiumSilver = "silver"
	PodiumBronze = "bronze"
)

// Row is one rendered standings line.
type Row struct {
	Rank   int    `json:"rank"`
	TeamID int    `json:"id"`
	Name   string `json:"name"`
	Owner  string `json:"owner"`
	Record string `json:"record"`
	WinPct string `json:"winPct"`
	Podium string `json:"podium,omitempty"`
}

// View is the league table the presentation shell renders.
type View struct {
	League domainteams.League `json:"league"`
	Rows   []Row              `json:"rows"`
}

// Podium returns the highlight class for a rank, or "" outside the top three.
func Podium(rank int) string {
	switch rank {
	case 1:
		return PodiumGold
	case 2:
		return PodiumSilver
	case 3:
		return PodiumBronze
	default:
		return ""
	}
}

// Service renders league standings from a standings source.
type Service struct {
	source providers.StandingsSource
	logger *slog.Logger
}

// NewService constructs a Service.
func NewService(source providers.StandingsSource, logger *slog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Standings fetches the league table and renders it in rank order.
func (s *Service) Standings(ctx context.Context) (View, error) {
	table, err := s.source.FetchStandings(ctx)
	if err != nil {
		return View{}, err
	}
	table = table.Normalize()

	v := View{League: table.League, Rows: make([]Row, 0, len(table.Teams))}
	for _, t := range table.Teams {
		v.Rows = append(v.Rows, Row{
			Rank:   t.Rank,
			TeamID: t.TeamID,
			Name:   t.Name,
			Owner:  t.Owner,
			Record: t.Record(),
			WinPct: fmt.Sprintf("%.3f", t.WinPct),
			Podium: Podium(t.Rank),
		})
	}
	logging.Info(logging.FromContext(ctx, s.logger), "standings built",
		logging.FieldCount, len(v.Rows),
		"league", v.League.Name,
	)
	return v, nil
}
