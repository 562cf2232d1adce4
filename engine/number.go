package engine

import (
	"fmt"
	"strings"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/numfmt"
)

// formatNumber renders a Number element: Integer/Currency/Percent/Skeleton
// styles use the pre-resolved numfmt.Options carried on the AST node;
// NumberStyleCustom is an implementation-defined format string the parser
// couldn't resolve as a skeleton, rendered here as a plain default-format
// number followed by the literal style text in parentheses so the pattern
// author's intent isn't silently dropped.
func formatNumber(n ast.Number, ctx *Context, out *strings.Builder) error {
	v, ok := ctx.lookup(n.Name)
	if !ok {
		if ctx.StrictVariables {
			return &MissingVariableError{Name: n.Name}
		}
		v = 0
	}
	f, ok := asFloat(v)
	if !ok {
		return &FormatError{Reason: fmt.Sprintf("argument %q is not numeric", n.Name)}
	}
	if n.Style == ast.NumberStyleCustom {
		out.WriteString(numfmt.Format(f, numfmt.Default(), ctx.Locale))
		out.WriteString(" (")
		out.WriteString(n.Custom)
		out.WriteString(")")
		return nil
	}
	out.WriteString(numfmt.Format(f, n.Options, ctx.Locale))
	return nil
}
