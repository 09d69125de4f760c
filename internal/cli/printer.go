package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/habits"
	"github.com/sandeepkv93/habitd/internal/model"
)

type outputOptions struct {
	JSON bool
}

func addOutputArg(cmd *cobra.Command, oo *outputOptions) {
	cmd.Flags().BoolVar(&oo.JSON, "json", false, "Print JSON instead of text.")
}

// Printer renders command results as colored text or as JSON.
type Printer struct {
	Out  io.Writer
	JSON bool
}

func newPrinter(cmd *cobra.Command, oo *outputOptions) *Printer {
	return &Printer{Out: cmd.OutOrStdout(), JSON: oo.JSON}
}

type habitEntry struct {
	model.Habit
	DoneToday bool         `json:"doneToday"`
	Stats     habits.Stats `json:"stats"`
}

type calendarEntry struct {
	model.Habit
	Days []calendarDay `json:"days"`
}

type calendarDay struct {
	Date string `json:"date"`
	Done bool   `json:"done"`
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Result prints a one-line outcome, or the object it describes in JSON mode.
func (p *Printer) Result(v any, format string, args ...any) error {
	if p.JSON {
		return p.encode(v)
	}
	_, err := color.New(color.FgGreen).Fprintf(p.Out, format+"\n", args...)
	return err
}

// Notice prints an outcome that changed nothing.
func (p *Printer) Notice(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if p.JSON {
		return p.encode(map[string]string{"message": msg})
	}
	_, err := color.New(color.Faint).Fprintln(p.Out, msg)
	return err
}

func (p *Printer) Error(err error) error {
	if p.JSON {
		if encErr := p.encode(map[string]string{"error": err.Error()}); encErr != nil {
			return encErr
		}
	}
	return err
}

func (p *Printer) Habits(today string, entries []habitEntry) error {
	if p.JSON {
		if entries == nil {
			entries = []habitEntry{}
		}
		return p.encode(entries)
	}
	title := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)
	if len(entries) == 0 {
		_, _ = title.Fprintln(p.Out, "habits")
		_, err := faint.Fprintln(p.Out, " none")
		return err
	}

	done := 0
	for _, e := range entries {
		if e.DoneToday {
			done++
		}
	}
	_, _ = title.Fprint(p.Out, "habits")
	_, _ = faint.Fprintf(p.Out, " - %s %d/%d done\n", today, done, len(entries))

	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("ID", "TODAY", "NAME", "COLOR", "STREAK", "LONGEST", "WEEK", "TOTAL")
	for _, e := range entries {
		table.AddRow(
			e.ID,
			checkMark(e.DoneToday),
			e.Name,
			e.Color,
			e.Stats.CurrentStreak,
			e.Stats.LongestStreak,
			fmt.Sprintf("%d/7", e.Stats.LastWeek),
			e.Stats.Total,
		)
	}
	_, err := fmt.Fprintln(p.Out, table)
	return err
}

func (p *Printer) Calendar(months []string, dates []string, entries []calendarEntry) error {
	if p.JSON {
		if entries == nil {
			entries = []calendarEntry{}
		}
		return p.encode(entries)
	}
	title := color.New(color.Bold, color.Underline)
	_, _ = title.Fprint(p.Out, "calendar")
	if len(dates) > 0 {
		_, _ = color.New(color.Faint).Fprintf(p.Out, " - %s to %s (%s)\n", dates[0], dates[len(dates)-1], strings.Join(months, "/"))
	} else {
		_, _ = fmt.Fprintln(p.Out)
	}
	if len(entries) == 0 {
		_, err := color.New(color.Faint).Fprintln(p.Out, " none")
		return err
	}

	table := uitable.New()
	for _, e := range entries {
		var b strings.Builder
		for i, d := range e.Days {
			if i > 0 && i%7 == 0 {
				b.WriteString(" ")
			}
			b.WriteString(dayMark(d.Done))
		}
		table.AddRow(e.Name, b.String())
	}
	_, err := fmt.Fprintln(p.Out, table)
	return err
}

func checkMark(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}

func dayMark(done bool) string {
	if done {
		return color.GreenString("●")
	}
	return "·"
}
