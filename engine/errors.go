package engine

import "fmt"

// MissingVariableError is returned when strict-variables is enabled and an
// argument name referenced by the pattern is absent from the argument map
// (spec.md §7: "MissingVariable{name} — only when strict-variables is set").
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("messageformat: missing variable %q", e.Name)
}

// FormatError wraps a value-conversion or sub-formatter failure at format
// time (spec.md §7: "numeric conversion or currency/unit formatting
// failed").
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "messageformat: " + e.Reason
}
