package teams

import "strings"

// Team is a fantasy league team as listed in the highlight selector.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// RosterPlayer is one rostered player; Position may list several slots ("PG, SG").
type RosterPlayer struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	InjuryStatus string `json:"injuryStatus,omitempty"`
}

// Positions splits the position string into upper-cased slot codes.
func (p RosterPlayer) Positions() []string {
	fields := strings.FieldsFunc(p.Position, func(r rune) bool {
		return r == ',' || r == '/' || r == ' '
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, strings.ToUpper(f))
	}
	return out
}
