package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/model"
)

func exactlyOneID(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	if len(args) != 1 {
		return errors.New("requires exactly one habit id")
	}
	return nil
}

func addAdd(topLevel *cobra.Command) {
	oo := &outputOptions{}
	var colorFlag string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit.",
		Example: `
habitd add read 20 pages
habitd add stretch --color "#22c55e"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a habit name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd, oo)
			s, err := openSession(cmd)
			if err != nil {
				return p.Error(err)
			}
			defer s.Close()

			h, err := s.store.Add(commandContext(cmd), strings.Join(args, " "), colorFlag)
			if err != nil {
				return p.Error(err)
			}
			return p.Result(h, "added %s (%s)", h.Name, h.ID)
		},
	}

	cmd.Flags().StringVarP(&colorFlag, "color", "c", "", "Habit color as #rrggbb. Defaults to default_color.")
	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addEdit(topLevel *cobra.Command) {
	oo := &outputOptions{}
	var nameFlag, colorFlag string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename or recolor a habit.",
		Example: `
habitd edit 1704099600000 --name "read 30 pages"
habitd edit 1704099600000 --color "#ef4444"
`,
		Args: exactlyOneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd, oo)
			if nameFlag == "" && colorFlag == "" {
				return p.Error(errors.New("nothing to change; pass --name or --color"))
			}
			s, err := openSession(cmd)
			if err != nil {
				return p.Error(err)
			}
			defer s.Close()

			current, ok := s.store.Habit(args[0])
			if !ok {
				return p.Error(fmt.Errorf("%w: %s", model.ErrNotFound, args[0]))
			}
			name, color := current.Name, current.Color
			if nameFlag != "" {
				name = nameFlag
			}
			if colorFlag != "" {
				color = colorFlag
			}
			h, err := s.store.Update(commandContext(cmd), current.ID, name, color)
			if err != nil {
				return p.Error(err)
			}
			return p.Result(h, "saved %s (%s)", h.Name, h.Color)
		},
	}

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "New habit name.")
	cmd.Flags().StringVarP(&colorFlag, "color", "c", "", "New habit color as #rrggbb.")
	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	oo := &outputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a habit and its completion history.",
		Example: `
habitd delete 1704099600000
`,
		Args: exactlyOneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd, oo)
			s, err := openSession(cmd)
			if err != nil {
				return p.Error(err)
			}
			defer s.Close()

			h, ok := s.store.Habit(args[0])
			if !ok {
				return p.Notice("no habit %s; nothing deleted", args[0])
			}
			if err := s.store.Delete(commandContext(cmd), h.ID); err != nil {
				return p.Error(err)
			}
			return p.Result(h, "deleted %s", h.Name)
		},
	}

	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addToggle(topLevel *cobra.Command) {
	oo := &outputOptions{}
	var dateFlag string

	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Flip whether a habit was completed on a day.",
		Example: `
habitd toggle 1704099600000
habitd done 1704099600000 --date 2024-01-01
`,
		Args: exactlyOneID,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd, oo)
			s, err := openSession(cmd)
			if err != nil {
				return p.Error(err)
			}
			defer s.Close()

			date := s.store.Today()
			if dateFlag != "" {
				day, err := model.ParseDate(dateFlag)
				if err != nil {
					return p.Error(err)
				}
				date = model.FormatDate(day)
			}
			done, err := s.store.Toggle(commandContext(cmd), args[0], date)
			if errors.Is(err, model.ErrNotFound) {
				return p.Notice("no habit %s; nothing toggled", args[0])
			}
			if err != nil {
				return p.Error(err)
			}
			h, _ := s.store.Habit(args[0])
			state := "undone"
			if done {
				state = "done"
			}
			entry := model.HabitLog{HabitID: h.ID, Date: date}
			return p.Result(struct {
				model.HabitLog
				Done bool `json:"done"`
			}{entry, done}, "%s %s on %s", h.Name, state, date)
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Day to toggle as YYYY-MM-DD. Defaults to today.")
	addOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
