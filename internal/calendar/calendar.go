// Package calendar maps the visible window of days to calendar cell indexes.
package calendar

import (
	"time"

	"github.com/sandeepkv93/habitd/internal/model"
)

const (
	DaysPerWeek  = 7
	DefaultWeeks = 4
)

// Window returns days dates ending at today, oldest first. Cell 0 is the oldest day.
func Window(today time.Time, days int) []time.Time {
	if days <= 0 {
		return nil
	}
	start := Day(today).AddDate(0, 0, -(days - 1))
	out := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDate(0, 0, i))
	}
	return out
}

// CellDate returns the ISO date shown in cell index of a window of days ending at today.
func CellDate(today time.Time, days, index int) (string, bool) {
	if index < 0 || index >= days {
		return "", false
	}
	return DateKey(Day(today).AddDate(0, 0, index-(days-1))), true
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func DateKey(t time.Time) string {
	return model.FormatDate(t)
}

// Months lists the distinct short month names across dates, in order.
func Months(dates []time.Time) []string {
	out := make([]string, 0, 2)
	for _, d := range dates {
		name := d.Format("Jan")
		if len(out) == 0 || out[len(out)-1] != name {
			out = append(out, name)
		}
	}
	return out
}
