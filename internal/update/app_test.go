package update

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitd/internal/config"
	"github.com/sandeepkv93/habitd/internal/focus"
	"github.com/sandeepkv93/habitd/internal/habits"
	"github.com/sandeepkv93/habitd/internal/storage"
)

var fixedNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

const (
	firstID  = "1704099600000"
	secondID = "1704099600001"
)

func newTestModel(t *testing.T, calendarFocus bool, names ...string) Model {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	store, err := habits.Load(context.Background(), storage.NewMemoryKV(), habits.WithClock(clock))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	for _, name := range names {
		if _, err := store.Add(context.Background(), name, ""); err != nil {
			t.Fatalf("add %q: %v", name, err)
		}
	}
	return NewModel(store, Options{CalendarWeeks: 4, CalendarFocus: calendarFocus, Now: clock})
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func keyOf(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t, true)
	if m.Nav.Focused() != focus.FormName {
		t.Fatalf("expected default focus %q, got %q", focus.FormName, m.Nav.Focused())
	}
	if m.Keys.Quit != "q" || m.Keys.Palette != "/" {
		t.Fatalf("unexpected keys: %+v", m.Keys)
	}
	if !m.nameInput.Focused() {
		t.Fatal("expected name input to receive keyboard input")
	}
}

func TestAddHabitWithKeyboard(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, runes("Read"))
	if m.nameInput.Value() != "Read" {
		t.Fatalf("expected typed name, got %q", m.nameInput.Value())
	}

	m = send(m, keyOf(tea.KeyEnter))
	if m.Nav.Focused() != focus.FormColor {
		t.Fatalf("expected enter on name to move to color, got %q", m.Nav.Focused())
	}
	m = send(m, runes("#22c55e"), keyOf(tea.KeyEnter))
	if m.Nav.Focused() != focus.FormSubmit {
		t.Fatalf("expected submit focus, got %q", m.Nav.Focused())
	}
	m = send(m, keyOf(tea.KeyEnter))

	list := m.Store.Habits()
	if len(list) != 1 || list[0].Name != "Read" || list[0].Color != "#22c55e" {
		t.Fatalf("unexpected habits: %+v", list)
	}
	if m.Nav.Focused() != focus.FormName {
		t.Fatalf("expected focus reset to form-name, got %q", m.Nav.Focused())
	}
	if m.nameInput.Value() != "" || m.colorInput.Value() != "" {
		t.Fatal("expected form cleared after submit")
	}
	if !strings.Contains(m.Status.Text, "added habit Read") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestSubmitEmptyNameReportsValidationError(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, FocusMsg{ID: focus.FormSubmit}, keyOf(tea.KeyEnter))
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "name") {
		t.Fatalf("expected validation error, got %+v", m.Status)
	}
	if len(m.Store.Habits()) != 0 {
		t.Fatal("expected no habit to be created")
	}
	if m.Nav.Focused() != focus.FormSubmit {
		t.Fatalf("expected focus to stay on submit, got %q", m.Nav.Focused())
	}
}

func TestNavigationWrapsAndSkipsCalendarWhenDisabled(t *testing.T) {
	m := newTestModel(t, false, "Read")
	m = send(m, keyOf(tea.KeyShiftTab))
	if m.Nav.Focused() != focus.HabitElement(firstID) {
		t.Fatalf("expected wrap to last habit, got %q", m.Nav.Focused())
	}
	m = send(m, keyOf(tea.KeyTab))
	if m.Nav.Focused() != focus.FormName {
		t.Fatalf("expected wrap to form-name, got %q", m.Nav.Focused())
	}
	m = send(m, keyOf(tea.KeyDown), keyOf(tea.KeyDown), keyOf(tea.KeyUp))
	if m.Nav.Focused() != focus.FormColor {
		t.Fatalf("expected form-color, got %q", m.Nav.Focused())
	}
}

func TestLeftRightStayInTextField(t *testing.T) {
	m := newTestModel(t, true, "Read")
	m = send(m, runes("ab"), keyOf(tea.KeyLeft), runes("x"), keyOf(tea.KeyRight))
	if m.Nav.Focused() != focus.FormName {
		t.Fatalf("expected focus unchanged, got %q", m.Nav.Focused())
	}
	if m.nameInput.Value() != "axb" {
		t.Fatalf("expected cursor movement inside field, got %q", m.nameInput.Value())
	}
}

func TestEnterAndSpaceToggleFocusedHabit(t *testing.T) {
	m := newTestModel(t, true, "Read")
	m = send(m, FocusMsg{ID: focus.HabitElement(firstID)}, keyOf(tea.KeyEnter))
	if !m.Store.IsCompleted(firstID, "2024-01-01") {
		t.Fatal("expected enter to mark today complete")
	}
	if !strings.Contains(m.Status.Text, "Read done on 2024-01-01") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Store.IsCompleted(firstID, "2024-01-01") {
		t.Fatal("expected space to undo today")
	}
}

func TestCalendarCellTogglesSelectedHabit(t *testing.T) {
	m := newTestModel(t, true, "Read", "Run")

	m = send(m, FocusMsg{ID: focus.CalendarElement(26)}, keyOf(tea.KeyEnter))
	if !m.Store.IsCompleted(firstID, "2023-12-31") {
		t.Fatal("expected calendar cell to fall back to the first habit")
	}

	m = send(m, FocusMsg{ID: focus.HabitElement(secondID)}, FocusMsg{ID: focus.CalendarElement(27)}, keyOf(tea.KeyEnter))
	if !m.Store.IsCompleted(secondID, "2024-01-01") {
		t.Fatal("expected calendar cell to toggle the selected habit")
	}
	if m.Store.IsCompleted(firstID, "2024-01-01") {
		t.Fatal("did not expect the first habit to change")
	}
}

func TestCalendarCellWithoutHabits(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, FocusMsg{ID: focus.CalendarElement(0)}, keyOf(tea.KeyEnter))
	if len(m.Store.Logs()) != 0 {
		t.Fatal("expected no logs without habits")
	}
	if m.Status.IsError || !strings.Contains(m.Status.Text, "add a habit") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestDeleteFocusedHabitResetsFocus(t *testing.T) {
	m := newTestModel(t, true, "Read", "Run")
	m = send(m, FocusMsg{ID: focus.HabitElement(firstID)}, keyOf(tea.KeyEnter), runes("x"))
	if _, ok := m.Store.Habit(firstID); ok {
		t.Fatal("expected habit deleted")
	}
	if len(m.Store.Logs()) != 0 {
		t.Fatalf("expected cascaded logs, got %+v", m.Store.Logs())
	}
	if m.Nav.Focused() != focus.FormName {
		t.Fatalf("expected focus reset to form-name, got %q", m.Nav.Focused())
	}
	if !m.nameInput.Focused() {
		t.Fatal("expected name input focused again")
	}
}

func TestEditFocusedHabit(t *testing.T) {
	m := newTestModel(t, true, "Read")
	m = send(m, FocusMsg{ID: focus.HabitElement(firstID)}, runes("e"))
	if m.Form.EditingID != firstID || m.nameInput.Value() != "Read" {
		t.Fatalf("expected edit mode for %s, got %+v name=%q", firstID, m.Form, m.nameInput.Value())
	}
	if m.Nav.Focused() != focus.FormName {
		t.Fatalf("expected form-name focus, got %q", m.Nav.Focused())
	}

	m = send(m, runes("ing"), FocusMsg{ID: focus.FormSubmit}, keyOf(tea.KeyEnter))
	h, ok := m.Store.Habit(firstID)
	if !ok || h.Name != "Reading" {
		t.Fatalf("expected renamed habit, got %+v", h)
	}
	if m.Form.EditingID != "" {
		t.Fatal("expected edit mode cleared")
	}
	if len(m.Store.Habits()) != 1 {
		t.Fatal("expected edit not to add a habit")
	}
}

func TestEscCancelsEdit(t *testing.T) {
	m := newTestModel(t, true, "Read")
	m = send(m, FocusMsg{ID: focus.HabitElement(firstID)}, runes("e"), keyOf(tea.KeyEsc))
	if m.Form.EditingID != "" || m.nameInput.Value() != "" {
		t.Fatalf("expected edit cancelled, got %+v", m.Form)
	}
}

func TestPaletteAddsAndDeletesHabits(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, FocusMsg{ID: focus.FormSubmit}, runes("/"))
	if !m.Palette.Active {
		t.Fatal("expected palette active")
	}
	m = send(m, runes("add Run #ff0000"), keyOf(tea.KeyEnter))
	if m.Palette.Active {
		t.Fatal("expected palette closed after command")
	}
	list := m.Store.Habits()
	if len(list) != 1 || list[0].Name != "Run" || list[0].Color != "#ff0000" {
		t.Fatalf("unexpected habits: %+v", list)
	}

	m = send(m, FocusMsg{ID: focus.HabitElement(list[0].ID)}, runes("/"), runes("delete "+list[0].ID), keyOf(tea.KeyEnter))
	if len(m.Store.Habits()) != 0 {
		t.Fatal("expected habit deleted from palette")
	}
	if m.Nav.Focused() != focus.FormName {
		t.Fatalf("expected stale focus reconciled, got %q", m.Nav.Focused())
	}
}

func TestPaletteToggleUnknownHabitIsNoop(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, FocusMsg{ID: focus.FormSubmit}, runes("/"), runes("toggle 42"), keyOf(tea.KeyEnter))
	if m.Status.IsError || !strings.Contains(m.Status.Text, "nothing toggled") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if len(m.Store.Logs()) != 0 {
		t.Fatal("expected no orphaned log")
	}
}

func TestPaletteParseError(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, FocusMsg{ID: focus.FormSubmit}, runes("/"), runes("launch"), keyOf(tea.KeyEnter))
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "unsupported command") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, true)
	typed := send(m, runes("q"))
	if typed.Quitting || typed.nameInput.Value() != "q" {
		t.Fatal("expected q to be typed into the name field")
	}

	m = send(m, FocusMsg{ID: focus.FormSubmit})
	updated, cmd := m.Update(runes("q"))
	if !updated.(Model).Quitting || cmd == nil {
		t.Fatal("expected q to quit outside text fields")
	}

	updated, cmd = newTestModel(t, true).Update(keyOf(tea.KeyCtrlC))
	if !updated.(Model).Quitting || cmd == nil {
		t.Fatal("expected ctrl+c to quit")
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := newTestModel(t, true)
	m = send(m, SetStatusMsg{Text: "ready"})
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	m = send(m, AppErrorMsg{Err: errBoom{}})
	if m.LastError == nil || !m.Status.IsError || m.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}
	m = send(m, ClearStatusMsg{})
	if m.Status.Text != "" || m.Status.IsError {
		t.Fatalf("expected cleared status, got %+v", m.Status)
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func TestFocusMsgRejectsUnknownElement(t *testing.T) {
	m := newTestModel(t, false, "Read")
	m = send(m, FocusMsg{ID: focus.CalendarElement(0)})
	if m.Nav.Focused() != focus.FormName || !m.Status.IsError {
		t.Fatalf("expected calendar focus rejected, got %q %+v", m.Nav.Focused(), m.Status)
	}
}

func TestViewContainsCoreState(t *testing.T) {
	m := newTestModel(t, true, "Read")
	m = send(m, FocusMsg{ID: focus.HabitElement(firstID)}, keyOf(tea.KeyEnter))
	out := m.View()
	for _, want := range []string{"habitd", "2024-01-01", "Read", "calendar", "1/1", "focus: habit-" + firstID} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}

	m = send(m, runes("?"))
	if !m.HelpVisible || !strings.Contains(m.View(), "help:") {
		t.Fatal("expected help panel")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultRuntimeConfig()
	cfg.CalendarWeeks = 2
	cfg.CalendarFocus = false
	opts := OptionsFromConfig(cfg)
	if opts.CalendarWeeks != 2 || opts.CalendarFocus || opts.Now == nil {
		t.Fatalf("unexpected options: %+v", opts)
	}
}
