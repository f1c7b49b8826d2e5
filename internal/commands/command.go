package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
	TypeTheme  Type = "theme"
	TypeThemes Type = "themes"
	TypeLog    Type = "log"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type TargetArgs struct {
	ID string
}

type ThemeArgs struct {
	Name   string
	Toggle bool
}

type LogArgs struct {
	Limit int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Target *TargetArgs
	Theme  *ThemeArgs
	Log    *LogArgs
}

const defaultLogLimit = 10

var aliases = map[string]Type{
	"rm":   TypeDelete,
	"del":  TypeDelete,
	"done": TypeToggle,
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]
	kind := Type(head)
	if alias, ok := aliases[head]; ok {
		kind = alias
	}

	switch kind {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeToggle, TypeDelete:
		return parseTarget(input, kind, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeThemes:
		return Command{Type: TypeThemes, Raw: input}, nil
	case TypeLog:
		return parseLog(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseTarget(raw string, kind Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one todo id", kind)}
	}
	return Command{Type: kind, Raw: raw, Target: &TargetArgs{ID: args[0]}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires a name or 'toggle'"}
	}
	name := strings.ToLower(args[0])
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Name: name, Toggle: name == "toggle"}}, nil
}

func parseLog(raw string, args []string) (Command, error) {
	limit := defaultLogLimit
	if len(args) > 0 {
		var n int
		if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n <= 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("log limit must be a positive number: %s", args[0])}
		}
		limit = n
	}
	return Command{Type: TypeLog, Raw: raw, Log: &LogArgs{Limit: limit}}, nil
}
