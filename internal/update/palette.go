package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/commands"
	"github.com/sandeepkv93/todo/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand(), nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.closePalette()
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			// The palette has its own text; keep whatever is typed in the add field.
			pending := m.List.Input
			added := m.addTodo(a.Text)
			m.List.Input = pending
			if !added {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "add requires text"}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Toggle: func(t commands.TargetArgs) (commands.Result, error) {
			if !m.toggleTodo(t.ID) {
				return commands.Result{}, noSuchTodo(t.ID)
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Delete: func(t commands.TargetArgs) (commands.Result, error) {
			if !m.deleteTodo(t.ID) {
				return commands.Result{}, noSuchTodo(t.ID)
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Theme: func(t commands.ThemeArgs) (commands.Result, error) {
			if t.Toggle {
				m.toggleTheme()
				return commands.Result{Message: m.Status.Text}, nil
			}
			if !m.changeTheme(t.Name) {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme: %s", t.Name)}
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Themes: func() (commands.Result, error) {
			names := make([]string, 0, len(model.Themes()))
			for _, theme := range model.Themes() {
				names = append(names, theme.Name)
			}
			return commands.Result{Message: "themes: " + strings.Join(names, ", ")}, nil
		},
		Log: func(l commands.LogArgs) (commands.Result, error) {
			m.journalLimit = l.Limit
			m.JournalVisible = true
			m.refreshJournal()
			return commands.Result{Message: fmt.Sprintf("journal: showing %d entries", len(m.journalRows))}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.log.Warn("palette command failed: " + err.Error())
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.closePalette()
	return m
}

func noSuchTodo(id string) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no todo with id %s", id)}
}
