package update

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/habitd/internal/focus"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/views"
)

func (m Model) handleFieldKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Nav.Focused() {
	case focus.FormName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case focus.FormColor:
		m.colorInput, cmd = m.colorInput.Update(msg)
	}
	return m, cmd
}

// submitForm creates a habit, or saves the one being edited, from the form fields.
func (m Model) submitForm() Model {
	ctx := context.Background()
	name := m.nameInput.Value()
	color := m.colorInput.Value()

	var (
		h    model.Habit
		err  error
		verb = "added"
	)
	if m.Form.EditingID != "" {
		verb = "saved"
		h, err = m.Store.Update(ctx, m.Form.EditingID, name, color)
	} else {
		h, err = m.Store.Add(ctx, name, color)
	}

	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		m.Status = StatusBar{Text: fmt.Sprintf("invalid %s: %s", verr.Field, verr.Reason), IsError: true}
		return m
	case errors.Is(err, model.ErrNotFound):
		m.cancelEdit()
		m.reconcile()
		m.Status = StatusBar{Text: "habit no longer exists"}
		return m
	case err != nil:
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
		return m
	}

	m.cancelEdit()
	m.Nav.Reset()
	m.reconcile()
	m.Status = StatusBar{Text: fmt.Sprintf("%s habit %s", verb, h.Name)}
	return m
}

func (m *Model) cancelEdit() {
	m.Form.EditingID = ""
	m.nameInput.SetValue("")
	m.colorInput.SetValue("")
}

func (m Model) renderFormView() string {
	sample := ""
	if c, err := model.NormalizeColor(m.colorInput.Value()); err == nil {
		sample = c
	} else if m.colorInput.Value() == "" {
		sample = m.defaultColor
	}
	return views.RenderFormPanel(views.FormPanelData{
		NameView:    m.nameInput.View(),
		ColorView:   m.colorInput.View(),
		ColorSample: sample,
		Editing:     m.Form.EditingID != "",
		Focused:     string(m.Nav.Focused()),
	})
}
