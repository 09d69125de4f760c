package update

import (
	"github.com/sandeepkv93/habitd/internal/focus"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderHabitListView() string {
	list := m.Store.Habits()
	today := m.today()
	focused := m.Nav.Focused()
	selected := m.calendarHabitID()

	rows := make([]views.HabitRowData, 0, len(list))
	done := 0
	for _, h := range list {
		stats := m.Store.Stats(h.ID, m.now())
		doneToday := m.Store.IsCompleted(h.ID, today)
		if doneToday {
			done++
		}
		rows = append(rows, views.HabitRowData{
			ID:        h.ID,
			Name:      h.Name,
			Color:     h.Color,
			DoneToday: doneToday,
			Streak:    stats.CurrentStreak,
			LastWeek:  stats.LastWeek,
			Focused:   focused == focus.HabitElement(h.ID),
			Selected:  m.calendarFocus && h.ID == selected,
		})
	}

	ratio := 0.0
	if len(list) > 0 {
		ratio = float64(done) / float64(len(list))
	}
	return views.RenderHabitListPanel(views.HabitListPanelData{
		Rows:         rows,
		ProgressView: m.todayProgress.ViewAs(ratio),
		Done:         done,
	})
}
