package engine

import (
	"strings"

	"github.com/aretext/messageformat/ast"
)

// formatArgument substitutes args[name]'s string form (spec.md §3). A
// missing argument is an empty string unless strict-variables is set
// (spec.md §7).
func formatArgument(a ast.Argument, ctx *Context, out *strings.Builder) error {
	v, ok := ctx.lookup(a.Name)
	if !ok {
		if ctx.StrictVariables {
			return &MissingVariableError{Name: a.Name}
		}
		return nil
	}
	out.WriteString(valueToString(v, ctx.Locale))
	return nil
}
