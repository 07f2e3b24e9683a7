package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

const dayLabelLayout = "Mon"

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekStart returns midnight UTC on the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Days returns n consecutive day labels ("Mon") and dates starting at start.
func Days(start time.Time, n int) (labels, dates []string) {
	labels = make([]string, 0, n)
	dates = make([]string, 0, n)
	for i := 0; i < n; i++ {
		day := start.AddDate(0, 0, i)
		labels = append(labels, day.Format(dayLabelLayout))
		dates = append(dates, FormatDate(day))
	}
	return labels, dates
}
