package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeEdit   Type = "edit"
	TypeDelete Type = "delete"
	TypeToggle Type = "toggle"
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
	Name  string
	Color string
}

type EditArgs struct {
	ID    string
	Name  string
	Color string
}

type DeleteArgs struct {
	ID string
}

// ToggleArgs carries an optional Date; empty means today.
type ToggleArgs struct {
	ID   string
	Date string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Edit   *EditArgs
	Delete *DeleteArgs
	Toggle *ToggleArgs
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

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeEdit:
		return parseEdit(input, args)
	case TypeDelete, "rm":
		return parseDelete(input, args)
	case TypeToggle, "done":
		return parseToggle(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// splitColor peels a trailing #color argument off a name.
func splitColor(args []string) (string, string) {
	color := ""
	if n := len(args); n > 1 && strings.HasPrefix(args[n-1], "#") {
		color = args[n-1]
		args = args[:n-1]
	}
	return strings.TrimSpace(strings.Join(args, " ")), color
}

func parseAdd(raw string, args []string) (Command, error) {
	name, color := splitColor(args)
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name, Color: color}}, nil
}

func parseEdit(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires an id and a name"}
	}
	name, color := splitColor(args[1:])
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires a name"}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{ID: args[0], Name: name, Color: color}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires exactly one id"}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{ID: args[0]}}, nil
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) == 0 || len(args) > 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires an id and an optional date"}
	}
	out := &ToggleArgs{ID: args[0]}
	if len(args) == 2 {
		out.Date = args[1]
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: out}, nil
}
