package habits

import (
	"sort"
	"time"

	"github.com/sandeepkv93/habitd/internal/model"
)

type Stats struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	LastWeek      int `json:"lastWeek"`
	Total         int `json:"total"`
}

// Stats summarizes a habit's completions relative to today. A streak still counts when only
// today is missing, since the day is not over yet.
func (s *Store) Stats(habitID string, today time.Time) Stats {
	done := make(map[string]bool)
	days := make([]time.Time, 0)
	for _, l := range s.logs {
		if l.HabitID != habitID || done[l.Date] {
			continue
		}
		d, err := model.ParseDate(l.Date)
		if err != nil {
			continue
		}
		done[l.Date] = true
		days = append(days, d)
	}

	out := Stats{Total: len(days)}
	if len(days) == 0 {
		return out
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if done[model.FormatDate(day.AddDate(0, 0, -i))] {
			out.LastWeek++
		}
	}

	cursor := day
	if !done[model.FormatDate(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for done[model.FormatDate(cursor)] {
		out.CurrentStreak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	run := 1
	out.LongestStreak = 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > out.LongestStreak {
			out.LongestStreak = run
		}
	}
	return out
}
