// Package focus implements keyboard focus traversal over the navigable elements of the habit
// screen: the form fields, one row per habit, and optionally one cell per visible calendar day.
package focus

import (
	"strconv"
	"strings"

	"github.com/sandeepkv93/habitd/internal/model"
)

type ElementID string

const (
	FormName   ElementID = "form-name"
	FormColor  ElementID = "form-color"
	FormSubmit ElementID = "form-submit"

	Default = FormName

	habitPrefix    = "habit-"
	calendarPrefix = "calendar-"
)

func HabitElement(habitID string) ElementID {
	return ElementID(habitPrefix + habitID)
}

func CalendarElement(index int) ElementID {
	return ElementID(calendarPrefix + strconv.Itoa(index))
}

func (e ElementID) HabitID() (string, bool) {
	id, ok := strings.CutPrefix(string(e), habitPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func (e ElementID) CalendarIndex() (int, bool) {
	raw, ok := strings.CutPrefix(string(e), calendarPrefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

func (e ElementID) IsFormField() bool {
	return e == FormName || e == FormColor
}

type Direction int

const (
	Next Direction = iota
	Previous
)

// NavigableOrder lists focusable elements in traversal order: the form, then habits in store
// order, then calendarCells day cells oldest first. Zero cells omits the calendar.
func NavigableOrder(habits []model.Habit, calendarCells int) []ElementID {
	if calendarCells < 0 {
		calendarCells = 0
	}
	out := make([]ElementID, 0, 3+len(habits)+calendarCells)
	out = append(out, FormName, FormColor, FormSubmit)
	for _, h := range habits {
		out = append(out, HabitElement(h.ID))
	}
	for i := 0; i < calendarCells; i++ {
		out = append(out, CalendarElement(i))
	}
	return out
}

type Navigator struct {
	focused       ElementID
	selectedHabit string
}

func NewNavigator() *Navigator {
	return &Navigator{focused: Default}
}

func (n *Navigator) Focused() ElementID {
	return n.focused
}

// SelectedHabit is the habit calendar activation applies to: the last habit row that held focus.
func (n *Navigator) SelectedHabit() string {
	return n.selectedHabit
}

// Focus records a focus change reported by the presentation layer. Ids outside order are ignored.
func (n *Navigator) Focus(id ElementID, order []ElementID) bool {
	if indexOf(order, id) < 0 {
		return false
	}
	n.set(id)
	return true
}

// Advance moves focus one step with wraparound. An unknown focused id clamps to the first element.
func (n *Navigator) Advance(dir Direction, order []ElementID) ElementID {
	if len(order) == 0 {
		n.set(Default)
		return n.focused
	}
	i := indexOf(order, n.focused)
	switch {
	case i < 0:
		i = 0
	case dir == Previous:
		i = (i - 1 + len(order)) % len(order)
	default:
		i = (i + 1) % len(order)
	}
	n.set(order[i])
	return n.focused
}

// Reconcile resets focus to Default when the focused element left the order. It reports whether
// a reset happened.
func (n *Navigator) Reconcile(order []ElementID) bool {
	if n.selectedHabit != "" && indexOf(order, HabitElement(n.selectedHabit)) < 0 {
		n.selectedHabit = ""
	}
	if indexOf(order, n.focused) >= 0 {
		return false
	}
	n.focused = Default
	return true
}

// Reset returns focus to Default, as after a form submission.
func (n *Navigator) Reset() {
	n.focused = Default
}

func (n *Navigator) set(id ElementID) {
	n.focused = id
	if habitID, ok := id.HabitID(); ok {
		n.selectedHabit = habitID
	}
}

func indexOf(order []ElementID, id ElementID) int {
	for i, e := range order {
		if e == id {
			return i
		}
	}
	return -1
}
