package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/focus"
	"github.com/sandeepkv93/habitd/internal/habits"
	"github.com/sandeepkv93/habitd/internal/model"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Palette string
	Edit    string
	Delete  string
	Help    string
	Quit    string
}

// FormState tracks whether the form creates a habit or edits EditingID.
type FormState struct {
	EditingID string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Options struct {
	CalendarWeeks int
	// CalendarFocus adds the calendar day cells to the navigable order.
	CalendarFocus bool
	DefaultColor  string
	Now           func() time.Time
}

func DefaultOptions() Options {
	return Options{
		CalendarWeeks: calendar.DefaultWeeks,
		CalendarFocus: true,
		DefaultColor:  model.DefaultColor,
		Now:           time.Now,
	}
}

type Model struct {
	Store       *habits.Store
	Nav         *focus.Navigator
	Form        FormState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	calendarWeeks int
	calendarFocus bool
	defaultColor  string
	now           func() time.Time

	nameInput     textinput.Model
	colorInput    textinput.Model
	commandInput  textinput.Model
	todayProgress progress.Model
	helpModel     help.Model
}

// FocusMsg reports a focus change originating outside the keyboard handler.
type FocusMsg struct {
	ID focus.ElementID
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(store *habits.Store, opts Options) Model {
	def := DefaultOptions()
	if opts.CalendarWeeks <= 0 {
		opts.CalendarWeeks = def.CalendarWeeks
	}
	if opts.DefaultColor == "" {
		opts.DefaultColor = def.DefaultColor
	}
	if opts.Now == nil {
		opts.Now = def.Now
	}
	m := Model{
		Store: store,
		Nav:   focus.NewNavigator(),
		Keys: GlobalKeyMap{
			Palette: "/",
			Edit:    "e",
			Delete:  "x",
			Help:    "?",
			Quit:    "q",
		},
		calendarWeeks: opts.CalendarWeeks,
		calendarFocus: opts.CalendarFocus,
		defaultColor:  opts.DefaultColor,
		now:           opts.Now,
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Habit name"
	m.nameInput.Prompt = ""
	m.nameInput.CharLimit = 64
	m.nameInput.Width = 32

	m.colorInput = textinput.New()
	m.colorInput.Placeholder = m.defaultColor
	m.colorInput.Prompt = ""
	m.colorInput.CharLimit = 7
	m.colorInput.Width = 10

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 40

	m.todayProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(20), progress.WithoutPercentage())
	m.helpModel = help.New()
}

// syncBubbleData points keyboard input at the text input that matches the focused element.
func (m *Model) syncBubbleData() {
	if m.Palette.Active {
		m.nameInput.Blur()
		m.colorInput.Blur()
		m.commandInput.Focus()
		return
	}
	m.commandInput.Blur()
	switch m.Nav.Focused() {
	case focus.FormName:
		m.nameInput.Focus()
		m.colorInput.Blur()
	case focus.FormColor:
		m.nameInput.Blur()
		m.colorInput.Focus()
	default:
		m.nameInput.Blur()
		m.colorInput.Blur()
	}
}

func (m Model) calendarCells() int {
	if !m.calendarFocus {
		return 0
	}
	return m.calendarWeeks * calendar.DaysPerWeek
}

// Order is the current navigable order derived from the store.
func (m Model) Order() []focus.ElementID {
	return focus.NavigableOrder(m.Store.Habits(), m.calendarCells())
}

func (m Model) today() string {
	return calendar.DateKey(m.now())
}

func (m Model) firstHabitID() string {
	list := m.Store.Habits()
	if len(list) == 0 {
		return ""
	}
	return list[0].ID
}

// reconcile drops focus that points at an element which no longer exists.
func (m *Model) reconcile() {
	m.Nav.Reconcile(m.Order())
}
