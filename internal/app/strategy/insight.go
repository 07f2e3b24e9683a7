package strategy

import (
	"fmt"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/teams"
)

// Composition names a roster build.
type Composition string

const (
	GuardHeavy Composition = "Guard-Heavy Small Ball"
	BigMan     Composition = "Big Man Dominant"
	Balanced   Composition = "Balanced Build"
)

const bigManFloor = 3

// Counts tallies positional groups. A multi-position player counts once in every group it lists.
type Counts struct {
	Guards   int `json:"guards"`
	Forwards int `json:"forwards"`
	Centers  int `json:"centers"`
	Players  int `json:"players"`
}

// Insight is the strategy summary for one roster.
type Insight struct {
	TeamID          int         `json:"teamId"`
	Title           Composition `json:"title"`
	Counts          Counts      `json:"counts"`
	Strength        string      `json:"strength"`
	Punt            string      `json:"punt"`
	Report          string      `json:"report"`
	WinStrategy     string      `json:"winStrategy"`
	ImprovementPlan string      `json:"improvementPlan"`
}

// Count groups roster players by the slots their position string lists.
func Count(roster []teams.RosterPlayer) Counts {
	c := Counts{Players: len(roster)}
	for _, p := range roster {
		var guard, forward, center bool
		for _, pos := range p.Positions() {
			switch pos {
			case "PG", "SG", "G":
				guard = true
			case "SF", "PF", "F":
				forward = true
			case "C":
				center = true
			}
		}
		if guard {
			c.Guards++
		}
		if forward {
			c.Forwards++
		}
		if center {
			c.Centers++
		}
	}
	return c
}

// Analyze classifies the roster's build and describes how to play it.
func Analyze(roster []teams.RosterPlayer) Insight {
	c := Count(roster)
	switch {
	case c.Guards > c.Forwards && c.Guards > c.Centers:
		strength, punt := "FT%, 3PM, AST, STL", "Block/Rebound"
		return Insight{
			Title:    GuardHeavy,
			Counts:   c,
			Strength: strength,
			Punt:     punt,
			Report: fmt.Sprintf("This team runs a %s strategy. With %d guards and only %d centers, they excel in %s while likely punting %s.",
				GuardHeavy, c.Guards, c.Centers, strength, punt),
			WinStrategy: "Running small? Lean into it. Stream high-efficiency guards to lock down FT% and steals. " +
				"Don't chase rebounds against big teams; focus on winning 5-4 with efficiency and assists.",
			ImprovementPlan: "Need balance? Trade a high-assist guard for a block-specialist forward to shore up FG% and BLK " +
				"without sacrificing your FT% advantage.",
		}
	case c.Centers >= bigManFloor && c.Centers > c.Guards:
		strength, punt := "FG%, REB, BLK", "FT%, 3PM"
		return Insight{
			Title:    BigMan,
			Counts:   c,
			Strength: strength,
			Punt:     punt,
			Report: fmt.Sprintf("This team is %s. With %d centers, the foundation is built on %s, likely accepting a punt on %s.",
				BigMan, c.Centers, strength, punt),
			WinStrategy: "Bully Ball. Secure FG% and Rebounds early in the week. Stream blocks specialists on off-days " +
				"to ensure you dominate the paint categories.",
			ImprovementPlan: "Too one-dimensional? Look for out-of-position stats. A center who hits 3s " +
				"or gets assists adds massive value to this build.",
		}
	default:
		return Insight{
			Title:    Balanced,
			Counts:   c,
			Strength: "Balanced across categories",
			Punt:     "None (Balanced)",
			Report: fmt.Sprintf("This is a %s. The roster is well-distributed (%dG / %dF / %dC), aiming to compete in all 9 categories without a hard punt.",
				Balanced, c.Guards, c.Forwards, c.Centers),
			WinStrategy: "Flexibility is key. Your balanced roster allows you to pivot mid-week. " +
				"Identify your opponent's weakest category on Wednesday and stream specifically to steal it.",
			ImprovementPlan: "Jack of all trades, master of none? Consider consolidating 2 good players into 1 elite star " +
				"to open a streaming spot and define a stronger team identity.",
		}
	}
}
