package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/focus"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		return m.handleKey(typed)
	case FocusMsg:
		if !m.Nav.Focus(typed.ID, m.Order()) {
			m.Status = StatusBar{Text: fmt.Sprintf("cannot focus %s", typed.ID), IsError: true}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Nav.Focused() {
	case focus.FormName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case focus.FormColor:
		m.colorInput, cmd = m.colorInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	switch keyStr {
	case "up", "shift+tab":
		m.Nav.Advance(focus.Previous, m.Order())
		return m, nil
	case "down", "tab":
		m.Nav.Advance(focus.Next, m.Order())
		return m, nil
	case "enter":
		return m.activate(), nil
	case "esc":
		if m.Form.EditingID != "" {
			m.cancelEdit()
			m.Status = StatusBar{Text: "edit cancelled"}
		}
		return m, nil
	}

	// Text fields own every other key, including left/right for cursor movement.
	if m.Nav.Focused().IsFormField() {
		return m.handleFieldKey(msg)
	}

	switch keyStr {
	case " ":
		return m.activate(), nil
	case "left", "right":
		return m, nil
	case m.Keys.Palette:
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case m.Keys.Edit:
		return m.editFocused(), nil
	case m.Keys.Delete, "delete":
		return m.deleteFocused(), nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	left := m.renderFormView() + "\n\n" + m.renderHabitListView()
	right := m.renderCalendarView()
	if palette := m.renderCommandPalette(); palette != "" {
		right += "\n\n" + palette
	}
	right += m.renderHelpIfVisible()

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("habitd | %s | focus: %s | habits: %d", m.today(), m.Nav.Focused(), len(m.Store.Habits())),
		LeftPane:   left,
		RightPane:  right,
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer: fmt.Sprintf("keys: tab/↓ next | shift+tab/↑ prev | enter toggle | %s edit | %s delete | %s cmd | %s help | %s quit",
			m.Keys.Edit, m.Keys.Delete, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}
