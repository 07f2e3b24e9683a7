package rankings

import (
	"errors"

	appconsistency "github.com/preston-bernstein/fantasy-hoops-service/internal/app/consistency"
	domainrankings "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
	"github.com/preston-bernstein/fantasy-hoops-service/internal/providers"
)

const noDataMessage = "No data available"

// View is the table snapshot the presentation shell renders.
type View struct {
	Status     Status                  `json:"status"`
	Error      string                  `json:"error,omitempty"`
	Warning    string                  `json:"warning,omitempty"`
	Sort       domainrankings.Selector `json:"sort"`
	ExpandedID *int                    `json:"expandedId"`
	Count      int                     `json:"count"`
	Rows       []Row                   `json:"rows"`
}

// Row is one rendered ranking row. Rank is the source's merit ordinal, not the row position.
type Row struct {
	Rank      int               `json:"rank"`
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Team      string            `json:"team"`
	Minutes   string            `json:"minutes"`
	Stats     map[string]string `json:"stats"`
	Value     string            `json:"value"`
	ValueTier string            `json:"valueTier"`
	Sorted    string            `json:"sorted,omitempty"`
	Expanded  bool              `json:"expanded"`
	Detail    *Detail           `json:"detail,omitempty"`
}

// Detail is the expanded row's consistency panel.
type Detail struct {
	Status        appconsistency.Status `json:"status"`
	Grade         string                `json:"grade,omitempty"`
	GradeClass    string                `json:"gradeClass,omitempty"`
	GamesAnalyzed int                   `json:"gamesAnalyzed,omitempty"`
	RecentPoints  string                `json:"recentPoints,omitempty"`
	RecentMinutes string                `json:"recentMinutes,omitempty"`
	Volatility    []VolatilityRow       `json:"volatility,omitempty"`
	Message       string                `json:"message,omitempty"`
	NotFound      bool                  `json:"notFound,omitempty"`
}

// VolatilityRow is one category's spread in the detail panel.
type VolatilityRow struct {
	Category    string  `json:"category"`
	Std         float64 `json:"std"`
	CV          float64 `json:"cv"`
	Rating      string  `json:"rating"`
	RatingClass string  `json:"ratingClass"`
}

func newRow(e domainrankings.Entity, sel domainrankings.Selector) Row {
	stats := make(map[string]string, len(domainrankings.Categories))
	for _, key := range domainrankings.Categories {
		v, _ := domainrankings.Field(e, key)
		stats[string(key)] = FormatStat(key, v)
	}
	return Row{
		Rank:      e.Rank,
		ID:        e.ID,
		Name:      e.Name,
		Team:      e.Team,
		Minutes:   FormatStat(domainrankings.KeyMinutes, e.Minutes),
		Stats:     stats,
		Value:     FormatValue(e.Value),
		ValueTier: ValueTier(e.Value),
		Sorted:    string(sel.Key),
	}
}

func newDetail(l appconsistency.Lookup) *Detail {
	d := &Detail{Status: l.Status}
	switch l.Status {
	case appconsistency.StatusReady:
		d.Grade = string(l.Record.Grade)
		d.GradeClass = l.Record.Grade.Class()
		d.GamesAnalyzed = l.Record.GamesAnalyzed
		if l.Record.GamesAnalyzed > 0 {
			d.RecentPoints = FormatStat(domainrankings.KeyPoints, l.Record.Recent.Points)
			d.RecentMinutes = FormatStat(domainrankings.KeyMinutes, l.Record.Recent.Minutes)
		}
		for _, key := range domainrankings.Categories {
			vol, ok := l.Record.Volatility[key]
			if !ok {
				continue
			}
			d.Volatility = append(d.Volatility, VolatilityRow{
				Category:    string(key),
				Std:         vol.StdDev,
				CV:          vol.CV,
				Rating:      string(vol.Rating),
				RatingClass: vol.Rating.Class(),
			})
		}
	case appconsistency.StatusUnavailable:
		d.Message = noDataMessage
		d.NotFound = errors.Is(l.Err, providers.ErrNotFound)
	}
	return d
}
