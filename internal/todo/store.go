// Package todo holds the to-do list state and the commands that change it.
//
// Every command either applies fully or leaves the state untouched; the
// returned bool says which. Nothing here blocks or returns an error.
package todo

import (
	"strings"

	"github.com/sandeepkv93/todo/internal/model"
)

type State struct {
	Items        []model.TodoItem
	Input        string
	Theme        model.Theme
	AutoContrast bool

	ids IDSource
}

type Option func(*State)

func WithIDSource(src IDSource) Option {
	return func(s *State) {
		if src != nil {
			s.ids = src
		}
	}
}

func WithTheme(theme model.Theme) Option {
	return func(s *State) {
		if theme.Validate() == nil {
			s.Theme = theme
		}
	}
}

func WithAutoContrast(enabled bool) Option {
	return func(s *State) { s.AutoContrast = enabled }
}

func New(opts ...Option) *State {
	s := &State{
		Items: make([]model.TodoItem, 0),
		Theme: model.LightTheme,
		ids:   NewCounterIDs("todo"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.AutoContrast {
		s.Theme = s.Theme.WithContrastText()
	}
	return s
}

// AddTodo appends a new item built from the trimmed text and clears Input.
// Blank text is ignored.
func (s *State) AddTodo(text string) (model.TodoItem, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.TodoItem{}, false
	}
	s.ensureIDs()
	id := s.ids.Next()
	for s.indexOf(id) >= 0 {
		id = s.ids.Next()
	}
	item := model.TodoItem{ID: id, Text: trimmed}
	s.Items = append(s.Items, item)
	s.Input = ""
	return item, true
}

func (s *State) ToggleTodo(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	// Copy so earlier State values sharing the slice keep their view.
	items := s.Snapshot()
	items[idx] = items[idx].Toggled()
	s.Items = items
	return true
}

func (s *State) DeleteTodo(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.Items = append(s.Items[:idx:idx], s.Items[idx+1:]...)
	return true
}

// ChangeTheme switches to the named theme from the fixed set.
func (s *State) ChangeTheme(name string) bool {
	theme, ok := model.LookupTheme(name)
	if !ok {
		return false
	}
	return s.ApplyTheme(theme)
}

// ApplyTheme switches to the built-in theme named by the descriptor. Only the
// name is read; the tokens always come from the fixed set.
func (s *State) ApplyTheme(theme model.Theme) bool {
	theme, ok := model.LookupTheme(theme.Name)
	if !ok {
		return false
	}
	if s.AutoContrast {
		theme = theme.WithContrastText()
	}
	s.Theme = theme
	return true
}

// ToggleTheme flips between the light and dark pair. Any swatch counts as
// "not dark" and goes to dark.
func (s *State) ToggleTheme() model.Theme {
	if s.Theme.Equal(model.DarkTheme) {
		s.ApplyTheme(model.LightTheme)
	} else {
		s.ApplyTheme(model.DarkTheme)
	}
	return s.Theme
}

// NextSwatch moves to the palette entry after the current one, wrapping.
func (s *State) NextSwatch() model.Theme {
	next := 0
	for i, theme := range model.Palette {
		if theme.Equal(s.Theme) {
			next = (i + 1) % len(model.Palette)
			break
		}
	}
	s.ApplyTheme(model.Palette[next])
	return s.Theme
}

func (s *State) Counts() (completed int, total int) {
	for _, item := range s.Items {
		if item.Completed {
			completed++
		}
	}
	return completed, len(s.Items)
}

func (s *State) Find(id string) (model.TodoItem, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.TodoItem{}, false
	}
	return s.Items[idx], true
}

// Snapshot returns a copy of the items safe to hand to renderers.
func (s *State) Snapshot() []model.TodoItem {
	out := make([]model.TodoItem, len(s.Items))
	copy(out, s.Items)
	return out
}

func (s *State) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range s.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) ensureIDs() {
	if s.ids == nil {
		s.ids = NewCounterIDs("todo")
	}
}
