package views

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

const (
	Title            = "To Do List"
	EmptyPlaceholder = "No tasks yet. Add one above."
	InputPlaceholder = "Add task..."
)

type Row struct {
	ID        string
	Text      string
	Completed bool
	Selected  bool
}

// Screen is the render model of the list. It is derived from state only.
type Screen struct {
	Title       string
	Pending     string
	Rows        []Row
	Placeholder string
	Footer      string
	Completed   int
	Total       int
	Theme       model.Theme
}

// NewScreen derives the render model. cursor < 0 selects no row.
func NewScreen(items []model.TodoItem, pending string, theme model.Theme, cursor int) Screen {
	s := Screen{
		Title:   Title,
		Pending: pending,
		Total:   len(items),
		Theme:   theme,
	}
	if len(items) == 0 {
		s.Placeholder = EmptyPlaceholder
		return s
	}
	s.Rows = make([]Row, 0, len(items))
	for i, item := range items {
		if item.Completed {
			s.Completed++
		}
		s.Rows = append(s.Rows, Row{
			ID:        item.ID,
			Text:      item.Text,
			Completed: item.Completed,
			Selected:  i == cursor,
		})
	}
	s.Footer = CompletionFooter(s.Completed, s.Total)
	return s
}

func (s Screen) Empty() bool { return s.Total == 0 }

// Progress is the completed fraction in [0,1].
func (s Screen) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

func CompletionFooter(completed, total int) string {
	return fmt.Sprintf("%d of %d tasks completed", completed, total)
}

type HelpPanelData struct {
	ThemeName string
	Bindings  []string
	HelpView  string
}

// HelpMarkdown lays the bindings out as a markdown list for glamour.
func (d HelpPanelData) HelpMarkdown() string {
	var b strings.Builder
	b.WriteString("## Keys\n\n")
	for _, line := range d.Bindings {
		b.WriteString("- " + line + "\n")
	}
	return b.String()
}

type JournalPanelData struct {
	TableView string
	Count     int
	ErrorText string
}

type ThemeSwatch struct {
	Name     string
	Current  bool
	Settings model.Theme
}

func Swatches(current model.Theme) []ThemeSwatch {
	out := make([]ThemeSwatch, 0, len(model.Palette))
	for _, theme := range model.Palette {
		out = append(out, ThemeSwatch{Name: theme.Name, Current: theme.Equal(current), Settings: theme})
	}
	return out
}
