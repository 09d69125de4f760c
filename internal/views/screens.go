package views

import (
	"fmt"
	"strings"
)

type FormPanelData struct {
	NameView    string
	ColorView   string
	ColorSample string
	Editing     bool
	Focused     string
}

type HabitRowData struct {
	ID        string
	Name      string
	Color     string
	DoneToday bool
	Streak    int
	LastWeek  int
	Focused   bool
	Selected  bool
}

type HabitListPanelData struct {
	Rows         []HabitRowData
	ProgressView string
	Done         int
}

type CalendarDotData struct {
	Color string
	Done  bool
}

type CalendarCellData struct {
	Date    string
	Day     int
	Weekday string
	Focused bool
	Dots    []CalendarDotData
}

type LegendData struct {
	Name     string
	Color    string
	Selected bool
}

type CalendarPanelData struct {
	Months    []string
	Cells     []CalendarCellData
	Legend    []LegendData
	Focusable bool
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderFormPanel(data FormPanelData) string {
	var b strings.Builder
	if data.Editing {
		b.WriteString(titleStyle.Render("edit habit") + "\n")
	} else {
		b.WriteString(titleStyle.Render("new habit") + "\n")
	}
	b.WriteString(focusMarker(data.Focused == "form-name") + "name:  " + data.NameView + "\n")
	b.WriteString(focusMarker(data.Focused == "form-color") + "color: " + data.ColorView)
	if data.ColorSample != "" {
		b.WriteString(" " + swatch(data.ColorSample, "■"))
	}
	b.WriteString("\n")

	label := "[ add habit ]"
	if data.Editing {
		label = "[ save habit ]"
	}
	if data.Focused == "form-submit" {
		label = focusedStyle.Render(label)
	}
	b.WriteString(focusMarker(data.Focused == "form-submit") + label)
	return b.String()
}

func RenderHabitListPanel(data HabitListPanelData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("habits") + "\n")
	if len(data.Rows) == 0 {
		b.WriteString(faintStyle.Render("  (no habits yet)"))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("today: %s %d/%d\n", data.ProgressView, data.Done, len(data.Rows)))
	for _, row := range data.Rows {
		check := "○"
		if row.DoneToday {
			check = "✓"
		}
		line := fmt.Sprintf("%s %s %s", check, swatch(row.Color, "●"), row.Name)
		if row.Focused {
			line = focusedStyle.Render(line)
		}
		selected := " "
		if row.Selected {
			selected = "*"
		}
		b.WriteString(fmt.Sprintf("%s%s%s %s\n",
			focusMarker(row.Focused),
			selected,
			line,
			faintStyle.Render(fmt.Sprintf("streak %d · %d/7", row.Streak, row.LastWeek)),
		))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("calendar") + " " + faintStyle.Render(strings.Join(data.Months, " / ")) + "\n")
	if len(data.Cells) == 0 {
		b.WriteString(faintStyle.Render("(empty)"))
		return b.String()
	}

	header := make([]string, 0, 7)
	for i := 0; i < 7 && i < len(data.Cells); i++ {
		header = append(header, fmt.Sprintf("%-6s", data.Cells[i].Weekday))
	}
	b.WriteString(faintStyle.Render(strings.Join(header, "")) + "\n")

	for i, cell := range data.Cells {
		b.WriteString(renderCalendarCell(cell))
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	if len(data.Cells)%7 != 0 {
		b.WriteString("\n")
	}

	if len(data.Legend) > 0 {
		b.WriteString("\n")
		for _, l := range data.Legend {
			marker := " "
			if l.Selected && data.Focusable {
				marker = "*"
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", marker, swatch(l.Color, "●"), l.Name))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderCalendarCell(cell CalendarCellData) string {
	day := fmt.Sprintf("%2d", cell.Day)
	if cell.Focused {
		day = focusedStyle.Render(day)
	}
	var dots strings.Builder
	for i, d := range cell.Dots {
		if i == 3 {
			break
		}
		if d.Done {
			dots.WriteString(swatch(d.Color, "●"))
		} else {
			dots.WriteString(faintStyle.Render("·"))
		}
	}
	pad := 4 - min(len(cell.Dots), 3)
	return day + dots.String() + strings.Repeat(" ", pad)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func focusMarker(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}
