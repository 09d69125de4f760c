package update

import (
	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/focus"
	"github.com/sandeepkv93/habitd/internal/views"
)

// calendarHabitID is the habit whose completions the calendar cells toggle.
func (m Model) calendarHabitID() string {
	if id := m.Nav.SelectedHabit(); id != "" {
		if _, ok := m.Store.Habit(id); ok {
			return id
		}
	}
	return m.firstHabitID()
}

func (m Model) renderCalendarView() string {
	dates := calendar.Window(m.now(), m.calendarWeeks*calendar.DaysPerWeek)
	list := m.Store.Habits()
	focused := m.Nav.Focused()

	cells := make([]views.CalendarCellData, 0, len(dates))
	for i, d := range dates {
		key := calendar.DateKey(d)
		dots := make([]views.CalendarDotData, 0, len(list))
		for _, h := range list {
			dots = append(dots, views.CalendarDotData{Color: h.Color, Done: m.Store.IsCompleted(h.ID, key)})
		}
		cells = append(cells, views.CalendarCellData{
			Date:    key,
			Day:     d.Day(),
			Weekday: d.Format("Mon")[:2],
			Focused: m.calendarFocus && focused == focus.CalendarElement(i),
			Dots:    dots,
		})
	}

	selected := m.calendarHabitID()
	legend := make([]views.LegendData, 0, len(list))
	for _, h := range list {
		legend = append(legend, views.LegendData{Name: h.Name, Color: h.Color, Selected: h.ID == selected})
	}

	return views.RenderCalendarPanel(views.CalendarPanelData{
		Months:    calendar.Months(dates),
		Cells:     cells,
		Legend:    legend,
		Focusable: m.calendarFocus,
	})
}
