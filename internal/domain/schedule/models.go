package schedule

import "strings"

// Window selects which matchup period a schedule page covers.
type Window string

const (
	WindowCurrent  Window = "current"
	WindowUpcoming Window = "upcoming"
)

// ParseWindow resolves a window name; empty input means the current period.
func ParseWindow(raw string) (Window, bool) {
	switch Window(strings.ToLower(strings.TrimSpace(raw))) {
	case "", WindowCurrent:
		return WindowCurrent, true
	case WindowUpcoming:
		return WindowUpcoming, true
	default:
		return "", false
	}
}

// Query asks a schedule source for one page. Highlight is a fantasy team ID; 0 means none.
type Query struct {
	Window    Window `json:"window"`
	Highlight int    `json:"highlight,omitempty"`
}

// Roster summarizes one fantasy team's scheduled games across the page's days.
// Daily is aligned to Page.Days but may be shorter or longer when the source is inconsistent.
type Roster struct {
	TeamID int    `json:"id"`
	Name   string `json:"name"`
	Total  int    `json:"totalGames"`
	Daily  []int  `json:"dailyCounts"`
}

// Matchup pairs two rosters for the period. Diff is home total minus away total.
type Matchup struct {
	Home   Roster `json:"home"`
	Away   Roster `json:"away"`
	Diff   int    `json:"diff"`
	IsMine bool   `json:"isMine"`
}

// Involves reports whether the given team plays in this matchup.
func (m Matchup) Involves(teamID int) bool {
	return teamID != 0 && (m.Home.TeamID == teamID || m.Away.TeamID == teamID)
}

// Page is one matchup period with its day labels and matchups.
type Page struct {
	Period   int       `json:"period"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	Days     []string  `json:"days"`
	DayDates []string  `json:"dayDates"`
	Matchups []Matchup `json:"matchups"`
}
