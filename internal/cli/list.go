package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"

	"github.com/sandeepkv93/habitd/internal/calendar"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addList(topLevel *cobra.Command) {
	oo := &outputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List habits with today's status and streaks.",
		Example: `
habitd list
habitd list --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runList(cmd, oo)
		},
	}

	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func runList(cmd *cobra.Command, oo *outputOptions) error {
	p := newPrinter(cmd, oo)
	s, err := openSession(cmd)
	if err != nil {
		return p.Error(err)
	}
	defer s.Close()

	now := time.Now()
	today := calendar.DateKey(now)
	list := s.store.Habits()
	entries := make([]habitEntry, 0, len(list))
	for _, h := range list {
		entries = append(entries, habitEntry{
			Habit:     h,
			DoneToday: s.store.IsCompleted(h.ID, today),
			Stats:     s.store.Stats(h.ID, now),
		})
	}
	return p.Habits(today, entries)
}

func addCalendar(topLevel *cobra.Command) {
	oo := &outputOptions{}
	weeks := 0

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show completions over the last weeks.",
		Example: `
habitd calendar
habitd calendar --weeks 8
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p := newPrinter(cmd, oo)
			if weeks < 0 {
				return p.Error(errors.New("--weeks must be positive"))
			}
			s, err := openSession(cmd)
			if err != nil {
				return p.Error(err)
			}
			defer s.Close()

			n := weeks
			if n == 0 {
				n = s.cfg.CalendarWeeks
			}
			window := calendar.Window(time.Now(), n*calendar.DaysPerWeek)
			dates := make([]string, 0, len(window))
			for _, d := range window {
				dates = append(dates, calendar.DateKey(d))
			}

			list := s.store.Habits()
			entries := make([]calendarEntry, 0, len(list))
			for _, h := range list {
				days := make([]calendarDay, 0, len(dates))
				for _, d := range dates {
					days = append(days, calendarDay{Date: d, Done: s.store.IsCompleted(h.ID, d)})
				}
				entries = append(entries, calendarEntry{Habit: h, Days: days})
			}
			return p.Calendar(calendar.Months(window), dates, entries)
		},
	}

	cmd.Flags().IntVarP(&weeks, "weeks", "w", 0, "Weeks to show. Defaults to calendar_weeks.")
	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addVersion(topLevel *cobra.Command) {
	shortened := false
	output := "json"

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Get habitd version.",
		Example: `
habitd version
habitd version --short
`,
		Run: func(cmd *cobra.Command, _ []string) {
			resp := goversion.FuncWithOutput(shortened, version, commit, date, output)
			fmt.Fprint(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")

	topLevel.AddCommand(cmd)
}
