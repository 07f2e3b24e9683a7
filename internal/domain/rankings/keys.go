package rankings

import "strings"

// Key names a sortable numeric field of an Entity. Names follow the upstream column headers.
type Key string

const (
	KeyPoints       Key = "PTS"
	KeyRebounds     Key = "REB"
	KeyAssists      Key = "AST"
	KeyThrees       Key = "FG3M"
	KeySteals       Key = "STL"
	KeyBlocks       Key = "BLK"
	KeyFieldGoalPct Key = "FG_PCT"
	KeyFreeThrowPct Key = "FT_PCT"
	KeyTurnovers    Key = "TOV"
	KeyValue        Key = "TOTAL_Z"
	KeyMinutes      Key = "MIN"
	KeyRank         Key = "RANK"
)

// Categories lists the nine fantasy categories in display order.
var Categories = []Key{
	KeyPoints,
	KeyRebounds,
	KeyAssists,
	KeyThrees,
	KeySteals,
	KeyBlocks,
	KeyFieldGoalPct,
	KeyFreeThrowPct,
	KeyTurnovers,
}

// ParseKey resolves a key name case-insensitively. Unknown names return false.
func ParseKey(raw string) (Key, bool) {
	k := Key(strings.ToUpper(strings.TrimSpace(raw)))
	switch k {
	case KeyPoints, KeyRebounds, KeyAssists, KeyThrees, KeySteals, KeyBlocks,
		KeyFieldGoalPct, KeyFreeThrowPct, KeyTurnovers, KeyValue, KeyMinutes, KeyRank:
		return k, true
	}
	return "", false
}

// IsPercentage reports whether the key holds a 0..1 ratio.
func (k Key) IsPercentage() bool {
	return k == KeyFieldGoalPct || k == KeyFreeThrowPct
}

// Field returns the value stored under key. It is the only way sorting reads an entity,
// so every sortable key must be listed here.
func Field(e Entity, key Key) (float64, bool) {
	switch key {
	case KeyPoints:
		return e.Points, true
	case KeyRebounds:
		return e.Rebounds, true
	case KeyAssists:
		return e.Assists, true
	case KeyThrees:
		return e.Threes, true
	case KeySteals:
		return e.Steals, true
	case KeyBlocks:
		return e.Blocks, true
	case KeyFieldGoalPct:
		return e.FieldGoalPct, true
	case KeyFreeThrowPct:
		return e.FreeThrowPct, true
	case KeyTurnovers:
		return e.Turnovers, true
	case KeyValue:
		return e.Value, true
	case KeyMinutes:
		return e.Minutes, true
	case KeyRank:
		return float64(e.Rank), true
	default:
		return 0, false
	}
}
