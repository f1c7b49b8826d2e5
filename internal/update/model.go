package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/todo/internal/logger"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/todo"
	"github.com/sandeepkv93/todo/internal/views"
)

type Mode string

const (
	ModeInput Mode = "input"
	ModeList  Mode = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Edit    key.Binding
	Theme   key.Binding
	Swatch  key.Binding
	Journal key.Binding
	Palette key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "move up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "move down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle done")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete", "backspace"), key.WithHelp("d", "delete task")),
		Edit:    key.NewBinding(key.WithKeys("i", "enter", "tab"), key.WithHelp("i/tab", "type a new task")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Swatch:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next swatch")),
		Journal: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "journal panel")),
		Palette: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command palette")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	List           todo.State
	Mode           Mode
	Cursor         int
	Palette        CommandPaletteState
	HelpVisible    bool
	JournalVisible bool
	Status         StatusBar
	Keys           KeyMap
	Quitting       bool
	LastError      error

	journal      Journal
	journalLimit int
	journalRows  []storage.JournalEntry
	journalErr   string
	log          *logger.Logger

	// Bubble components used for rich TUI controls
	input        textinput.Model
	commandInput textinput.Model
	doneProgress progress.Model
	helpModel    help.Model
	journalTable table.Model
}

type AddTodoMsg struct {
	Text string
}

type ToggleTodoMsg struct {
	ID string
}

type DeleteTodoMsg struct {
	ID string
}

type ChangeThemeMsg struct {
	Name string
}

type ToggleThemeMsg struct{}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// NewModel returns a fresh, empty list with default settings.
func NewModel() Model {
	m := Model{
		List:         *todo.New(),
		Mode:         ModeInput,
		Keys:         DefaultKeyMap(),
		journal:      NoopJournal{},
		journalLimit: DefaultRuntimeConfig().JournalLimit,
		log:          logger.Nop(),
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithConfig(cfg RuntimeConfig, journal Journal, log *logger.Logger) (Model, error) {
	ids, err := todo.NewIDSource(todo.IDStrategy(cfg.IDStrategy))
	if err != nil {
		return Model{}, err
	}
	theme, ok := model.LookupTheme(cfg.Theme)
	if !ok {
		return Model{}, fmt.Errorf("%w: unknown theme %q", model.ErrInvalidTheme, cfg.Theme)
	}

	m := NewModel()
	m.List = *todo.New(
		todo.WithIDSource(ids),
		todo.WithAutoContrast(cfg.AutoContrast),
		todo.WithTheme(theme),
	)
	if journal != nil {
		m.journal = journal
	}
	if log != nil {
		m.log = log
	}
	if cfg.JournalLimit > 0 {
		m.journalLimit = cfg.JournalLimit
	}
	m.syncBubbleData()
	return m, nil
}

func (m *Model) initBubbleComponents() {
	m.input = textinput.New()
	m.input.Prompt = "add> "
	m.input.Placeholder = views.InputPlaceholder
	m.input.CharLimit = 0
	m.input.Width = 40
	m.input.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 0
	m.commandInput.Width = 48

	m.doneProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))

	m.helpModel = help.New()
	m.helpModel.ShowAll = true

	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Kind", Width: 7},
		{Title: "Todo", Width: 10},
		{Title: "Detail", Width: 24},
	}
	m.journalTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(8))
}

func (m *Model) syncBubbleData() {
	m.clampCursor()
	if m.input.Value() != m.List.Input {
		m.input.SetValue(m.List.Input)
	}
	if m.Mode == ModeInput && !m.Palette.Active {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	if m.Palette.Active {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}

	rows := make([]table.Row, 0, len(m.journalRows))
	for _, e := range m.journalRows {
		rows = append(rows, table.Row{fmt.Sprintf("%d", e.Seq), strings.ToUpper(string(e.Kind)), e.TodoID, e.Detail})
	}
	m.journalTable.SetRows(rows)
}

func (m *Model) clampCursor() {
	if m.Cursor >= len(m.List.Items) {
		m.Cursor = len(m.List.Items) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) selectedID() string {
	if m.Cursor < 0 || m.Cursor >= len(m.List.Items) {
		return ""
	}
	return m.List.Items[m.Cursor].ID
}
