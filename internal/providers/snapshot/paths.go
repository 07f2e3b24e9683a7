package snapshot

import (
	"fmt"
	"path/filepath"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
)

const manifestFile = "manifest.json"

// RankingsPath builds the path to the rankings snapshot.
func RankingsPath(basePath string) string {
	return filepath.Join(basePath, "rankings.json")
}

// ConsistencyPath builds the path to one player's consistency snapshot.
func ConsistencyPath(basePath string, playerID int) string {
	return filepath.Join(basePath, "consistency", fmt.Sprintf("%d.json", playerID))
}

// SchedulePath builds the path to a schedule window snapshot.
func SchedulePath(basePath string, window schedule.Window) string {
	return filepath.Join(basePath, "schedule", fmt.Sprintf("%s.json", window))
}

// TeamsPath builds the path to the team list snapshot.
func TeamsPath(basePath string) string {
	return filepath.Join(basePath, "teams.json")
}

// StandingsPath builds the path to the league table snapshot.
func StandingsPath(basePath string) string {
	return filepath.Join(basePath, "standings.json")
}

// RosterPath builds the path to one team's roster snapshot.
func RosterPath(basePath string, teamID int) string {
	return filepath.Join(basePath, "rosters", fmt.Sprintf("%d.json", teamID))
}
