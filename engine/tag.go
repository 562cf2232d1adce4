package engine

import (
	"strings"

	"github.com/aretext/messageformat/ast"
)

// formatTag implements spec.md §4.8: the child message is rendered into a
// scratch buffer first, since a handler transforms the whole inner string
// rather than streaming into the shared output buffer; with no handler
// registered for the tag name, the inner content is appended verbatim
// (the tag itself is stripped).
func formatTag(t ast.Tag, ctx *Context, out *strings.Builder) error {
	inner := GetBuffer()
	defer ReleaseBuffer(inner)
	if err := Format(t.Child, ctx, inner); err != nil {
		return err
	}

	if handler, ok := ctx.TagHandlers[t.Name]; ok {
		out.WriteString(handler(inner.String()))
		return nil
	}
	out.WriteString(inner.String())
	return nil
}
