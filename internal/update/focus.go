package update

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/focus"
	"github.com/sandeepkv93/habitd/internal/model"
)

// activate performs the action bound to the focused element.
func (m Model) activate() Model {
	action := m.Nav.Activate(m.firstHabitID())
	switch action.Kind {
	case focus.ActionEditField:
		m.Nav.Advance(focus.Next, m.Order())
	case focus.ActionSubmitForm:
		return m.submitForm()
	case focus.ActionToggleHabit:
		m.toggle(action.HabitID, m.today())
	case focus.ActionToggleCalendarCell:
		date, ok := calendar.CellDate(m.now(), m.calendarCells(), action.CalendarIndex)
		if !ok {
			m.Status = StatusBar{Text: fmt.Sprintf("calendar cell %d is out of range", action.CalendarIndex), IsError: true}
			return m
		}
		if action.HabitID == "" {
			m.Status = StatusBar{Text: "add a habit before marking days"}
			return m
		}
		m.toggle(action.HabitID, date)
	}
	return m
}

func (m *Model) toggle(habitID, date string) {
	done, err := m.Store.Toggle(context.Background(), habitID, date)
	switch {
	case errors.Is(err, model.ErrNotFound):
		m.Status = StatusBar{Text: fmt.Sprintf("habit %s no longer exists", habitID)}
	case err != nil:
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("toggle failed: %v", err), IsError: true}
	default:
		name := habitID
		if h, ok := m.Store.Habit(habitID); ok {
			name = h.Name
		}
		verb := "undone"
		if done {
			verb = "done"
		}
		m.Status = StatusBar{Text: fmt.Sprintf("%s %s on %s", name, verb, date)}
	}
	m.reconcile()
}

func (m Model) focusedHabit() (model.Habit, bool) {
	id, ok := m.Nav.Focused().HabitID()
	if !ok {
		return model.Habit{}, false
	}
	return m.Store.Habit(id)
}

func (m Model) editFocused() Model {
	h, ok := m.focusedHabit()
	if !ok {
		m.Status = StatusBar{Text: "focus a habit to edit it"}
		return m
	}
	m.Form.EditingID = h.ID
	m.nameInput.SetValue(h.Name)
	m.nameInput.CursorEnd()
	m.colorInput.SetValue(h.Color)
	m.Nav.Focus(focus.FormName, m.Order())
	m.Status = StatusBar{Text: fmt.Sprintf("editing %s", h.Name)}
	return m
}

func (m Model) deleteFocused() Model {
	h, ok := m.focusedHabit()
	if !ok {
		m.Status = StatusBar{Text: "focus a habit to delete it"}
		return m
	}
	if err := m.Store.Delete(context.Background(), h.ID); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("delete failed: %v", err), IsError: true}
		return m
	}
	if m.Form.EditingID == h.ID {
		m.cancelEdit()
	}
	m.reconcile()
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %s", h.Name)}
	return m
}
