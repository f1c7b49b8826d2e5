package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add buy milk", TypeAdd},
		{"toggle todo-1", TypeToggle},
		{"done todo-1", TypeToggle},
		{"delete todo-2", TypeDelete},
		{"/rm todo-2", TypeDelete},
		{"theme dark", TypeTheme},
		{"themes", TypeThemes},
		{"log", TypeLog},
		{"LOG 3", TypeLog},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("/add   walk   the dog ")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Text != "walk the dog" {
		t.Fatalf("unexpected add text: %q", cmd.Add.Text)
	}

	cmd, err = Parse("theme Toggle")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !cmd.Theme.Toggle {
		t.Fatalf("expected toggle flag, got %+v", cmd.Theme)
	}

	cmd, err = Parse("log")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Log.Limit != defaultLogLimit {
		t.Fatalf("expected default log limit, got %d", cmd.Log.Limit)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"  /  ", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"add", ErrCodeInvalidArgument},
		{"toggle", ErrCodeInvalidArgument},
		{"delete a b", ErrCodeInvalidArgument},
		{"theme", ErrCodeInvalidArgument},
		{"log zero", ErrCodeInvalidArgument},
		{"log -2", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add write docs")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Text != "write docs" {
				t.Fatalf("unexpected text: %q", a.Text)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	for _, in := range []string{"toggle todo-1", "delete todo-1", "theme dark", "themes", "log"} {
		cmd, err := Parse(in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", in, err)
		}
		_, err = Execute(cmd, Handlers{})
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
			t.Fatalf("%q: expected missing handler error, got %v", in, err)
		}
	}
}

func TestExecuteUnknownType(t *testing.T) {
	_, err := Execute(Command{Type: "rename"}, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}
