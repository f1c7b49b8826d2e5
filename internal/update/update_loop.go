package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/views"
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
			return m.handlePaletteKey(typed)
		}
		if m.Mode == ModeInput {
			return m.handleInputKey(typed)
		}
		return m.handleListKey(typed)
	case tea.WindowSizeMsg:
		width := typed.Width / 3
		if width < 10 {
			width = 10
		}
		if width > 40 {
			width = 40
		}
		m.doneProgress.Width = width
		return m, nil
	case AddTodoMsg:
		m.addTodo(typed.Text)
		return m, nil
	case ToggleTodoMsg:
		m.toggleTodo(typed.ID)
		return m, nil
	case DeleteTodoMsg:
		m.deleteTodo(typed.ID)
		return m, nil
	case ChangeThemeMsg:
		m.changeTheme(typed.Name)
		return m, nil
	case ToggleThemeMsg:
		m.toggleTheme()
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
			m.log.Error(typed.Err, "application error")
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.Mode == ModeInput {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	cursor := -1
	if m.Mode == ModeList {
		cursor = m.Cursor
	}
	screen := views.NewScreen(m.List.Items, m.List.Input, m.List.Theme, cursor)
	progressView := ""
	if !screen.Empty() {
		progressView = m.doneProgress.ViewAs(screen.Progress())
	}
	body := views.RenderScreen(screen, m.input.View(), progressView) + "\n\n" + views.RenderSwatches(views.Swatches(m.List.Theme))

	side := strings.TrimSpace(strings.Join([]string{
		m.renderCommandPalette(),
		m.renderJournalIfVisible(),
		m.renderHelpIfVisible(),
	}, "\n"))

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("todo | mode: %s | theme: %s", m.Mode, m.List.Theme.Name),
		Body:       body,
		Side:       side,
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     "keys: tab list/input | space toggle | d delete | t theme | p swatch | L journal | / cmd | ? help | q quit",
		Theme:      m.List.Theme,
	})
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return "palette: " + m.commandInput.View()
}
