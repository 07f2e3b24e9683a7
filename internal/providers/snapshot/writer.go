package snapshot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/consistency"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

// Writer persists snapshots in the layout FSStore reads, recording each write in the manifest.
type Writer struct {
	basePath string
	mu       sync.Mutex
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteRankings writes rankings.json.
func (w *Writer) WriteRankings(items []rankings.Entity) error {
	return w.write(RankingsPath(w.BasePath()), items)
}

// WriteConsistency writes consistency/{id}.json.
func (w *Writer) WriteConsistency(rec consistency.Record) error {
	if rec.PlayerID == 0 {
		return fmt.Errorf("player id required")
	}
	return w.write(ConsistencyPath(w.BasePath(), rec.PlayerID), rec)
}

// WriteSchedule writes schedule/{window}.json. Highlight flags are cleared; FSStore recomputes them per request.
func (w *Writer) WriteSchedule(window schedule.Window, page schedule.Page) error {
	if window == "" {
		return fmt.Errorf("window required")
	}
	page.Matchups = append([]schedule.Matchup(nil), page.Matchups...)
	for i := range page.Matchups {
		page.Matchups[i].IsMine = false
	}
	return w.write(SchedulePath(w.BasePath(), window), page)
}

// WriteTeams writes teams.json.
func (w *Writer) WriteTeams(items []teams.Team) error {
	return w.write(TeamsPath(w.BasePath()), items)
}

// WriteStandings writes standings.json.
func (w *Writer) WriteStandings(table teams.Standings) error {
	return w.write(StandingsPath(w.BasePath()), table)
}

// WriteRoster writes rosters/{teamID}.json.
func (w *Writer) WriteRoster(teamID int, players []teams.RosterPlayer) error {
	if teamID == 0 {
		return fmt.Errorf("team id required")
	}
	return w.write(RosterPath(w.BasePath(), teamID), players)
}

func (w *Writer) write(target string, payload any) error {
	if w == nil || w.basePath == "" {
		return fmt.Errorf("snapshot writer not configured")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	if existing, err := os.ReadFile(target); err != nil || !bytes.Equal(existing, data) {
		if err := writeAtomic(target, data); err != nil {
			return err
		}
	}
	return w.updateManifest(target)
}

func (w *Writer) updateManifest(target string) error {
	m, _ := ReadManifest(w.basePath)
	rel, err := filepath.Rel(w.basePath, target)
	if err != nil {
		return err
	}
	m.Files[filepath.ToSlash(rel)] = time.Now().UTC()
	return writeManifest(w.basePath, m)
}

func writeAtomic(target string, data []byte) error {
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
