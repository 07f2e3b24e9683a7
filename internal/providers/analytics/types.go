package analytics

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type playerRow struct {
	PlayerID   int     `json:"PLAYER_ID"`
	PlayerName string  `json:"PLAYER_NAME"`
	Team       string  `json:"TEAM_ABBREVIATION"`
	Minutes    float64 `json:"MIN"`
	Points     float64 `json:"PTS"`
	Rebounds   float64 `json:"REB"`
	Assists    float64 `json:"AST"`
	Threes     float64 `json:"FG3M"`
	Steals     float64 `json:"STL"`
	Blocks     float64 `json:"BLK"`
	FGPct      float64 `json:"FG_PCT"`
	FTPct      float64 `json:"FT_PCT"`
	Turnovers  float64 `json:"TOV"`
	TotalZ     float64 `json:"TOTAL_Z"`
	Rank       int     `json:"RANK"`
}

type consistencyResponse struct {
	Message       string                     `json:"message"`
	PlayerID      int                        `json:"player_id"`
	GamesAnalyzed int                        `json:"games_analyzed"`
	Grade         string                     `json:"consistency_grade"`
	Volatility    map[string]volatilityValue `json:"volatility_stats"`
	Recent        recentAverages             `json:"recent_averages"`
}

type recentAverages struct {
	Points  float64 `json:"PTS"`
	Minutes float64 `json:"MIN"`
}

// volatilityValue accepts either a bare standard deviation or an object with std, cv, and rating.
type volatilityValue struct {
	Std    float64 `json:"std"`
	CV     float64 `json:"cv"`
	Rating string  `json:"rating"`
}

func (v *volatilityValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = volatilityValue{}
		return nil
	}
	if data[0] == '{' {
		type plain volatilityValue
		var out plain
		if err := json.Unmarshal(data, &out); err != nil {
			return err
		}
		*v = volatilityValue(out)
		return nil
	}
	var std float64
	if err := json.Unmarshal(data, &std); err != nil {
		return err
	}
	*v = volatilityValue{Std: std}
	return nil
}

type scheduleResponse struct {
	Period    int               `json:"period"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Days      []string          `json:"days"`
	DayDates  []string          `json:"day_dates"`
	Matchups  []matchupResponse `json:"matchups"`
}

type matchupResponse struct {
	HomeTeam    rosterSummary `json:"home_team"`
	AwayTeam    rosterSummary `json:"away_team"`
	IsMyMatchup bool          `json:"is_my_matchup"`
}

type rosterSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	TotalGames  int    `json:"total_games"`
	DailyCounts []int  `json:"daily_counts"`
}

type teamResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

type standingResponse struct {
	ID     int     `json:"id"`
	Rank   int     `json:"rank"`
	Name   string  `json:"name"`
	Owner  string  `json:"owner"`
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	Ties   int     `json:"ties"`
	WinPct float64 `json:"win_pct"`
}

type leagueInfoResponse struct {
	Name   string `json:"name"`
	Season int    `json:"season"`
}

type rosterPlayerResponse struct {
	PlayerID     int    `json:"player_id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	InjuryStatus string `json:"injury_status"`
}

// rosterEnvelope covers the roster endpoint answering with {"roster": [...]} instead of a bare list.
type rosterEnvelope struct {
	Roster []rosterPlayerResponse `json:"roster"`
}

func decodeRoster(data []byte) ([]rosterPlayerResponse, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var env rosterEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, err
		}
		return env.Roster, nil
	}
	var list []rosterPlayerResponse
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}
