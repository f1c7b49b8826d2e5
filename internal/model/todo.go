package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyText    = errors.New("model: todo text is required")
	ErrInvalidTheme = errors.New("model: invalid theme")
)

type TodoItem struct {
	ID        string
	Text      string
	Completed bool
}

func (t TodoItem) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: todo id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("%w: id %q", ErrEmptyText, t.ID)
	}
	return nil
}

// Toggled returns a copy of t with Completed flipped.
func (t TodoItem) Toggled() TodoItem {
	t.Completed = !t.Completed
	return t
}
