package model

import (
	"errors"
	"testing"
)

func TestTodoValidateSuccess(t *testing.T) {
	item := TodoItem{ID: "todo-1", Text: "Buy milk"}
	if err := item.Validate(); err != nil {
		t.Fatalf("expected valid todo, got error: %v", err)
	}
}

func TestTodoValidateRequiresID(t *testing.T) {
	err := TodoItem{Text: "Buy milk"}.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "model: todo id is required" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTodoValidateBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		err := TodoItem{ID: "todo-1", Text: text}.Validate()
		if err == nil || !errors.Is(err, ErrEmptyText) {
			t.Fatalf("expected ErrEmptyText for %q, got: %v", text, err)
		}
	}
}

func TestTodoToggledLeavesOriginal(t *testing.T) {
	item := TodoItem{ID: "todo-1", Text: "Walk dog"}
	flipped := item.Toggled()
	if !flipped.Completed {
		t.Fatal("expected toggled copy to be completed")
	}
	if item.Completed {
		t.Fatal("expected original to stay incomplete")
	}
	if flipped.Toggled().Completed {
		t.Fatal("expected double toggle to restore completed=false")
	}
}
