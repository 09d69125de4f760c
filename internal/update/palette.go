package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/commands"
	"github.com/sandeepkv93/habitd/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		m.commandInput, _ = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m
	}

	ctx := context.Background()
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			h, err := m.Store.Add(ctx, a.Name, a.Color)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added habit %s (%s)", h.Name, h.ID)}, nil
		},
		Edit: func(e commands.EditArgs) (commands.Result, error) {
			current, ok := m.Store.Habit(e.ID)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no habit %s", e.ID)}
			}
			color := e.Color
			if color == "" {
				color = current.Color
			}
			h, err := m.Store.Update(ctx, e.ID, e.Name, color)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("saved habit %s", h.Name)}, nil
		},
		Delete: func(d commands.DeleteArgs) (commands.Result, error) {
			h, ok := m.Store.Habit(d.ID)
			if !ok {
				return commands.Result{Message: fmt.Sprintf("no habit %s; nothing deleted", d.ID)}, nil
			}
			if err := m.Store.Delete(ctx, d.ID); err != nil {
				return commands.Result{}, err
			}
			if m.Form.EditingID == d.ID {
				m.cancelEdit()
			}
			return commands.Result{Message: fmt.Sprintf("deleted habit %s", h.Name)}, nil
		},
		Toggle: func(t commands.ToggleArgs) (commands.Result, error) {
			date := t.Date
			if date == "" {
				date = m.today()
			}
			done, err := m.Store.Toggle(ctx, t.ID, date)
			if errors.Is(err, model.ErrNotFound) {
				return commands.Result{Message: fmt.Sprintf("no habit %s; nothing toggled", t.ID)}, nil
			}
			if err != nil {
				return commands.Result{}, err
			}
			state := "undone"
			if done {
				state = "done"
			}
			return commands.Result{Message: fmt.Sprintf("habit %s %s on %s", t.ID, state, date)}, nil
		},
	})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.closePalette()
	m.reconcile()
	return m
}
