package focus

type ActionKind string

const (
	ActionNone               ActionKind = "none"
	ActionEditField          ActionKind = "edit-field"
	ActionSubmitForm         ActionKind = "submit-form"
	ActionToggleHabit        ActionKind = "toggle-habit"
	ActionToggleCalendarCell ActionKind = "toggle-calendar-cell"
)

// Action is the primary action of the focused element. The presentation layer performs it.
type Action struct {
	Kind          ActionKind
	Element       ElementID
	HabitID       string
	CalendarIndex int
}

// Activate resolves the focused element to its primary action. Calendar cells act on the
// selected habit, or on fallbackHabit when no habit row has been focused yet.
func (n *Navigator) Activate(fallbackHabit string) Action {
	a := Action{Kind: ActionNone, Element: n.focused}
	switch {
	case n.focused.IsFormField():
		a.Kind = ActionEditField
	case n.focused == FormSubmit:
		a.Kind = ActionSubmitForm
	default:
		if id, ok := n.focused.HabitID(); ok {
			a.Kind = ActionToggleHabit
			a.HabitID = id
			return a
		}
		if i, ok := n.focused.CalendarIndex(); ok {
			a.Kind = ActionToggleCalendarCell
			a.CalendarIndex = i
			a.HabitID = n.selectedHabit
			if a.HabitID == "" {
				a.HabitID = fallbackHabit
			}
		}
	}
	return a
}
