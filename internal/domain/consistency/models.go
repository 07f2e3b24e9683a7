package consistency

import (
	"strings"

	"github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
)

// Grade is a consistency tier, best to worst: A+, A, B, C, D.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
)

var gradeOrder = []Grade{GradeAPlus, GradeA, GradeB, GradeC, GradeD}

// Ordinal returns the grade's position from best (0) to worst, or -1 for grades outside the alphabet.
func (g Grade) Ordinal() int {
	for i, known := range gradeOrder {
		if g == known {
			return i
		}
	}
	return -1
}

// Class maps the grade to a presentation class.
func (g Grade) Class() string {
	switch {
	case strings.HasPrefix(string(g), "A"):
		return "excellent"
	case g == GradeB:
		return "good"
	case g == GradeC:
		return "fair"
	default:
		return "poor"
	}
}

// Rating is the qualitative volatility label supplied with a category's spread.
type Rating string

const (
	RatingLow      Rating = "low"
	RatingModerate Rating = "moderate"
	RatingHigh     Rating = "high"
	RatingUnknown  Rating = ""
)

// ParseRating normalizes upstream labels; anything unrecognized is RatingUnknown.
func ParseRating(raw string) Rating {
	switch Rating(strings.ToLower(strings.TrimSpace(raw))) {
	case RatingLow:
		return RatingLow
	case RatingModerate:
		return RatingModerate
	case RatingHigh:
		return RatingHigh
	default:
		return RatingUnknown
	}
}

// Class maps the rating to a presentation class.
func (r Rating) Class() string {
	switch r {
	case RatingLow:
		return "stable"
	case RatingModerate:
		return "variable"
	case RatingHigh:
		return "volatile"
	default:
		return "neutral"
	}
}

// Volatility describes the spread of one category over recent games.
type Volatility struct {
	StdDev float64 `json:"std"`
	CV     float64 `json:"cv"`
	Rating Rating  `json:"rating"`
}

// Averages are per-game means over the analyzed games.
type Averages struct {
	Points  float64 `json:"pts"`
	Minutes float64 `json:"min"`
}

// Record is the lazily fetched detail for one player.
type Record struct {
	PlayerID      int                         `json:"playerId"`
	Grade         Grade                       `json:"grade"`
	GamesAnalyzed int                         `json:"gamesAnalyzed"`
	Volatility    map[rankings.Key]Volatility `json:"volatility"`
	Recent        Averages                    `json:"recentAverages"`
}
