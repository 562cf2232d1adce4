package engine

import (
	"strings"

	"github.com/aretext/messageformat/ast"
)

// formatCustom implements spec.md §4.9: a placeholder whose TYPE wasn't one
// of the built-ins. A registered handler is invoked with the raw argument
// value, the style substring (if any), and the current locale/culture;
// with no handler registered, the value's plain string form is appended.
func formatCustom(c ast.Custom, ctx *Context, out *strings.Builder) error {
	v, ok := ctx.lookup(c.Name)
	if !ok && ctx.StrictVariables {
		return &MissingVariableError{Name: c.Name}
	}

	handler, registered := ctx.CustomFormatters[c.FormatterID]
	if !registered {
		out.WriteString(valueToString(v, ctx.Locale))
		return nil
	}

	result, err := handler(v, c.Style, c.HasStyle, ctx.Locale)
	if err != nil {
		return &FormatError{Reason: err.Error()}
	}
	out.WriteString(result)
	return nil
}
