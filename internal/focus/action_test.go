package focus

import "testing"

func TestActivate(t *testing.T) {
	order := NavigableOrder(sampleHabits, 28)
	cases := []struct {
		focus ElementID
		want  Action
	}{
		{FormName, Action{Kind: ActionEditField, Element: FormName}},
		{FormColor, Action{Kind: ActionEditField, Element: FormColor}},
		{FormSubmit, Action{Kind: ActionSubmitForm, Element: FormSubmit}},
		{"habit-2", Action{Kind: ActionToggleHabit, Element: "habit-2", HabitID: "2"}},
		{"calendar-27", Action{Kind: ActionToggleCalendarCell, Element: "calendar-27", HabitID: "2", CalendarIndex: 27}},
	}
	n := NewNavigator()
	for _, tc := range cases {
		if !n.Focus(tc.focus, order) {
			t.Fatalf("focus %q rejected", tc.focus)
		}
		if got := n.Activate("1"); got != tc.want {
			t.Fatalf("activate %q = %+v, want %+v", tc.focus, got, tc.want)
		}
	}
}

func TestActivateCalendarFallsBackToFirstHabit(t *testing.T) {
	n := NewNavigator()
	n.Focus("calendar-0", NavigableOrder(sampleHabits, 28))
	got := n.Activate("1")
	if got.Kind != ActionToggleCalendarCell || got.HabitID != "1" || got.CalendarIndex != 0 {
		t.Fatalf("unexpected action: %+v", got)
	}
}

func TestActivateUnknownElement(t *testing.T) {
	n := NewNavigator()
	n.focused = "mystery"
	if got := n.Activate(""); got.Kind != ActionNone {
		t.Fatalf("expected no action, got %+v", got)
	}
}
