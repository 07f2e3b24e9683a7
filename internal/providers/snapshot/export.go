package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/logging"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

// Summary counts what one export wrote.
type Summary struct {
	Rankings       int           `json:"rankings"`
	Records        int           `json:"records"`
	RecordsMissing int           `json:"recordsMissing"`
	RecordsFailed  int           `json:"recordsFailed"`
	Windows        int           `json:"windows"`
	Teams          int           `json:"teams"`
	Standings      int           `json:"standings"`
	Rosters        int           `json:"rosters"`
	RostersFailed  int           `json:"rostersFailed"`
	Duration       time.Duration `json:"duration"`
}

// Exporter copies everything a source serves into snapshot files.
type Exporter struct {
	source providers.DataSource
	writer *Writer
	logger *slog.Logger
}

// NewExporter constructs an exporter writing through writer.
func NewExporter(source providers.DataSource, writer *Writer, logger *slog.Logger) *Exporter {
	return &Exporter{source: source, writer: writer, logger: logger}
}

// Run exports rankings, every ranked player's consistency record, both schedule windows, teams, standings,
// and rosters. Rankings, schedule, and teams are required; standings, per-player, and per-team failures
// are logged and counted.
func (e *Exporter) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	if e == nil || e.source == nil || e.writer == nil {
		return sum, errors.New("exporter not configured")
	}
	start := time.Now()

	entities, err := e.source.FetchRankings(ctx)
	if err != nil {
		return sum, fmt.Errorf("fetch rankings: %w", err)
	}
	if err := e.writer.WriteRankings(entities); err != nil {
		return sum, fmt.Errorf("write rankings: %w", err)
	}
	sum.Rankings = len(entities)

	for _, entity := range entities {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		rec, err := e.source.FetchConsistency(ctx, entity.ID)
		switch {
		case errors.Is(err, providers.ErrNotFound):
			sum.RecordsMissing++
			continue
		case err != nil:
			sum.RecordsFailed++
			logging.Warn(e.logger, "consistency export failed", logging.FieldPlayerID, entity.ID, "error", err)
			continue
		}
		if err := e.writer.WriteConsistency(rec); err != nil {
			return sum, fmt.Errorf("write consistency %d: %w", entity.ID, err)
		}
		sum.Records++
	}

	for _, window := range []schedule.Window{schedule.WindowCurrent, schedule.WindowUpcoming} {
		page, err := e.source.FetchSchedule(ctx, schedule.Query{Window: window})
		if err != nil {
			return sum, fmt.Errorf("fetch schedule %s: %w", window, err)
		}
		if err := e.writer.WriteSchedule(window, page); err != nil {
			return sum, fmt.Errorf("write schedule %s: %w", window, err)
		}
		sum.Windows++
	}

	league, err := e.source.FetchTeams(ctx)
	if err != nil {
		return sum, fmt.Errorf("fetch teams: %w", err)
	}
	if err := e.writer.WriteTeams(league); err != nil {
		return sum, fmt.Errorf("write teams: %w", err)
	}
	sum.Teams = len(league)

	table, err := e.source.FetchStandings(ctx)
	if err != nil {
		logging.Warn(e.logger, "standings export failed", "error", err)
	} else {
		if err := e.writer.WriteStandings(table); err != nil {
			return sum, fmt.Errorf("write standings: %w", err)
		}
		sum.Standings = len(table.Teams)
	}

	for _, team := range league {
		players, err := e.source.FetchRoster(ctx, team.ID)
		if err != nil {
			sum.RostersFailed++
			logging.Warn(e.logger, "roster export failed", logging.FieldTeamID, team.ID, "error", err)
			continue
		}
		if err := e.writer.WriteRoster(team.ID, players); err != nil {
			return sum, fmt.Errorf("write roster %d: %w", team.ID, err)
		}
		sum.Rosters++
	}

	sum.Duration = time.Since(start)
	logging.Info(e.logger, "snapshot export complete",
		"rankings", sum.Rankings,
		"records", sum.Records,
		"teams", sum.Teams,
		logging.FieldDurationMS, sum.Duration.Milliseconds(),
	)
	return sum, nil
}
