package views

import (
	"strings"
	"testing"
)

func TestRenderFormPanelMarksFocus(t *testing.T) {
	out := RenderFormPanel(FormPanelData{NameView: "Read", ColorView: "#111111", Focused: "form-color"})
	if !strings.Contains(out, "new habit") || !strings.Contains(out, "[ add habit ]") {
		t.Fatalf("expected new habit form, got %q", out)
	}
	if !strings.Contains(out, "> color:") {
		t.Fatalf("expected focus marker on color field, got %q", out)
	}

	out = RenderFormPanel(FormPanelData{Editing: true, Focused: "form-submit"})
	if !strings.Contains(out, "edit habit") || !strings.Contains(out, "save habit") {
		t.Fatalf("expected edit form, got %q", out)
	}
}

func TestRenderHabitListPanel(t *testing.T) {
	out := RenderHabitListPanel(HabitListPanelData{})
	if !strings.Contains(out, "no habits yet") {
		t.Fatalf("expected empty state, got %q", out)
	}

	out = RenderHabitListPanel(HabitListPanelData{
		Done: 1,
		Rows: []HabitRowData{
			{ID: "1", Name: "Read", Color: "#111111", DoneToday: true, Streak: 3, LastWeek: 4, Focused: true},
			{ID: "2", Name: "Run", Color: "#222222"},
		},
	})
	for _, want := range []string{"Read", "Run", "✓", "○", "streak 3 · 4/7", "1/2", "> "} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRenderCalendarPanel(t *testing.T) {
	cells := make([]CalendarCellData, 0, 14)
	for i := 0; i < 14; i++ {
		cells = append(cells, CalendarCellData{Day: i + 1, Weekday: "Mo", Dots: []CalendarDotData{{Color: "#111111", Done: i%2 == 0}}})
	}
	out := RenderCalendarPanel(CalendarPanelData{
		Months:    []string{"Jan"},
		Cells:     cells,
		Legend:    []LegendData{{Name: "Read", Color: "#111111", Selected: true}},
		Focusable: true,
	})
	if !strings.Contains(out, "calendar") || !strings.Contains(out, "Jan") || !strings.Contains(out, "14") {
		t.Fatalf("unexpected calendar output: %q", out)
	}
	if !strings.Contains(out, "*") || !strings.Contains(out, "Read") {
		t.Fatalf("expected selected legend entry, got %q", out)
	}
}

func TestRenderCommandPalette(t *testing.T) {
	if RenderCommandPalette(false, "x") != "" {
		t.Fatal("expected inactive palette to render nothing")
	}
	if out := RenderCommandPalette(true, "/add read"); out != "command: /add read" {
		t.Fatalf("unexpected palette: %q", out)
	}
}
