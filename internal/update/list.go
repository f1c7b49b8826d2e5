package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/storage"
)

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.addTodo(m.input.Value())
		return m, nil
	case "esc", "tab":
		m.Mode = ModeList
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.List.Input = m.input.Value()
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(m.List.Items)-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		m.toggleTodo(m.selectedID())
	case key.Matches(msg, m.Keys.Delete):
		m.deleteTodo(m.selectedID())
	case key.Matches(msg, m.Keys.Edit):
		m.Mode = ModeInput
		return m, m.input.Focus()
	case key.Matches(msg, m.Keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.Keys.Swatch):
		theme := m.List.NextSwatch()
		m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", theme.Name)}
		m.record(storage.EntryTheme, "", theme.Name)
	case key.Matches(msg, m.Keys.Journal):
		m.JournalVisible = !m.JournalVisible
		if m.JournalVisible {
			m.refreshJournal()
		}
	case key.Matches(msg, m.Keys.Palette):
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.Status = StatusBar{Text: "command palette active"}
		return m, m.commandInput.Focus()
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
	}
	return m, nil
}

func (m *Model) addTodo(text string) bool {
	item, ok := m.List.AddTodo(text)
	if !ok {
		return false
	}
	m.Cursor = len(m.List.Items) - 1
	m.Status = StatusBar{Text: fmt.Sprintf("added %s: %s", item.ID, item.Text)}
	m.record(storage.EntryAdd, item.ID, item.Text)
	return true
}

func (m *Model) toggleTodo(id string) bool {
	if !m.List.ToggleTodo(id) {
		return false
	}
	item, _ := m.List.Find(id)
	state := "reopened"
	if item.Completed {
		state = "completed"
	}
	m.Status = StatusBar{Text: fmt.Sprintf("%s %s", id, state)}
	m.record(storage.EntryToggle, id, state)
	return true
}

func (m *Model) deleteTodo(id string) bool {
	item, found := m.List.Find(id)
	if !found || !m.List.DeleteTodo(id) {
		return false
	}
	m.clampCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %s", id)}
	m.record(storage.EntryDelete, id, item.Text)
	return true
}

func (m *Model) changeTheme(name string) bool {
	if !m.List.ChangeTheme(name) {
		return false
	}
	m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", m.List.Theme.Name)}
	m.record(storage.EntryTheme, "", m.List.Theme.Name)
	return true
}

func (m *Model) toggleTheme() {
	theme := m.List.ToggleTheme()
	m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", theme.Name)}
	m.record(storage.EntryTheme, "", theme.Name)
}
