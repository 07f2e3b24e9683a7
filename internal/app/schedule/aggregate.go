package schedule

import (
	"fmt"

	domainschedule "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/schedule"
)

// Side names the roster holding the game-count advantage.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
	SideEven Side = "even"
)

const evenLabel = "Even"

// Advantage is the comparative signal for one matchup.
type Advantage struct {
	Side      Side   `json:"side"`
	Team      string `json:"team,omitempty"`
	Magnitude int    `json:"magnitude"`
	Label     string `json:"label"`
}

// Cell is one day of a roster's grid. Active marks days with at least one scheduled game.
type Cell struct {
	Day    string `json:"day"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// Matchup is a source matchup annotated with its advantage and per-day grids.
type Matchup struct {
	Home      domainschedule.Roster `json:"home"`
	Away      domainschedule.Roster `json:"away"`
	Diff      int                   `json:"diff"`
	Advantage Advantage             `json:"advantage"`
	IsMine    bool                  `json:"isMine"`
	HomeCells []Cell                `json:"homeCells"`
	AwayCells []Cell                `json:"awayCells"`
}

// Page is an annotated schedule page. Matchups keep the source order.
type Page struct {
	Period   int       `json:"period"`
	Start    string    `json:"start"`
	End      string    `json:"end"`
	Days     []string  `json:"days"`
	DayDates []string  `json:"dayDates"`
	Matchups []Matchup `json:"matchups"`
}

// Aggregate annotates every matchup of p. The differential is recomputed from the roster totals
// rather than trusted from the source.
func Aggregate(p domainschedule.Page) Page {
	out := Page{
		Period:   p.Period,
		Start:    p.Start,
		End:      p.End,
		Days:     nonNil(p.Days),
		DayDates: nonNil(p.DayDates),
		Matchups: make([]Matchup, 0, len(p.Matchups)),
	}
	for _, m := range p.Matchups {
		out.Matchups = append(out.Matchups, annotate(m, p.Days))
	}
	return out
}

func annotate(m domainschedule.Matchup, days []string) Matchup {
	diff := m.Home.Total - m.Away.Total
	return Matchup{
		Home:      m.Home,
		Away:      m.Away,
		Diff:      diff,
		Advantage: Classify(diff, m.Home.Name, m.Away.Name),
		IsMine:    m.IsMine,
		HomeCells: Grid(days, m.Home.Daily),
		AwayCells: Grid(days, m.Away.Daily),
	}
}

// Classify attributes a home-minus-away differential to a side.
func Classify(diff int, homeName, awayName string) Advantage {
	switch {
	case diff > 0:
		return Advantage{Side: SideHome, Team: homeName, Magnitude: diff, Label: fmt.Sprintf("%s +%d", homeName, diff)}
	case diff < 0:
		return Advantage{Side: SideAway, Team: awayName, Magnitude: -diff, Label: fmt.Sprintf("%s +%d", awayName, -diff)}
	default:
		return Advantage{Side: SideEven, Label: evenLabel}
	}
}

// Grid pairs day labels with daily counts; the shorter sequence sets the length.
func Grid(days []string, daily []int) []Cell {
	n := min(len(days), len(daily))
	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		cells[i] = Cell{Day: days[i], Count: daily[i], Active: daily[i] > 0}
	}
	return cells
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
