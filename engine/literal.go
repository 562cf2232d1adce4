package engine

import (
	"strings"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/numfmt"
)

// formatLiteral appends a Literal element's already-unescaped text.
func formatLiteral(l ast.Literal, out *strings.Builder) {
	out.WriteString(l.Text)
}

// formatPound renders the enclosing plural/ordinal's offset-adjusted value
// using the locale's default number format (spec.md §4.5 point 5). A Pound
// element outside any plural context (unreachable from the parser, which
// only emits Pound when inPlural is true) renders as a literal "#".
func formatPound(_ ast.Pound, ctx *Context, out *strings.Builder) error {
	v, ok := ctx.currentPlural()
	if !ok {
		out.WriteByte('#')
		return nil
	}
	out.WriteString(numfmt.Format(v, numfmt.Default(), ctx.Locale))
	return nil
}
