package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/habitd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

const paletteHelp = `
**Commands**

- ` + "`add <name> [#color]`" + ` create a habit
- ` + "`edit <id> <name> [#color]`" + ` rename or recolor
- ` + "`delete <id>`" + ` remove a habit and its history
- ` + "`toggle <id> [yyyy-mm-dd]`" + ` flip completion, today by default
`

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n\n" + m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.globalBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}) + "\n" + views.RenderMarkdown(paletteHelp),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: "tab/down", Action: "focus next"},
		{Key: "shift+tab/up", Action: "focus previous"},
		{Key: "enter/space", Action: "activate focused element"},
		{Key: m.Keys.Edit, Action: "edit focused habit"},
		{Key: m.Keys.Delete, Action: "delete focused habit"},
		{Key: "esc", Action: "cancel edit"},
		{Key: m.Keys.Palette, Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) helpBindings() []key.Binding {
	list := m.globalBindings()
	out := make([]key.Binding, 0, len(list))
	for _, kb := range list {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
