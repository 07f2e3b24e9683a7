package rankings

// Entity is a ranked player with per-game category values and an aggregate value score.
// Values arrive already computed from the data source; this service never derives them.
type Entity struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Team         string  `json:"team"`
	Minutes      float64 `json:"minutes"`
	Points       float64 `json:"pts"`
	Rebounds     float64 `json:"reb"`
	Assists      float64 `json:"ast"`
	Threes       float64 `json:"fg3m"`
	Steals       float64 `json:"stl"`
	Blocks       float64 `json:"blk"`
	FieldGoalPct float64 `json:"fgPct"`
	FreeThrowPct float64 `json:"ftPct"`
	Turnovers    float64 `json:"tov"`
	Value        float64 `json:"totalZ"`
	Rank         int     `json:"rank"`
}

// Direction is the order applied to a sort key.
type Direction string

const (
	Descending Direction = "desc"
	Ascending  Direction = "asc"
)

// Selector is the active (key, direction) pair. The zero value means "no sort".
type Selector struct {
	Key       Key       `json:"key"`
	Direction Direction `json:"direction"`
}

// IsZero reports whether no sort key is selected.
func (s Selector) IsZero() bool {
	return s.Key == ""
}
