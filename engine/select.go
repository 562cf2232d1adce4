package engine

import (
	"fmt"
	"strings"

	"github.com/aretext/messageformat/ast"
)

// formatSelect implements spec.md §4.5 Select: compare the argument's
// string form (explicit nil -> "null", booleans -> "true"/"false") against
// each case key, falling back to `other`. A missing (non-strict) variable
// is not the same as an explicit null: it goes straight to `other` per
// spec.md §7, rather than matching a `null` case.
func formatSelect(s ast.Select, ctx *Context, out *strings.Builder) error {
	v, ok := ctx.lookup(s.Name)
	if !ok && ctx.StrictVariables {
		return &MissingVariableError{Name: s.Name}
	}

	var key string
	matchKey := ok
	if ok {
		key = selectKey(v, ctx.Locale)
	}

	var other *ast.Case
	for i := range s.Cases {
		c := &s.Cases[i]
		if matchKey && c.Key == key {
			return Format(c.Child, ctx, out)
		}
		if c.Key == "other" {
			other = c
		}
	}
	if other == nil {
		return &FormatError{Reason: fmt.Sprintf("select block for %q has no other case", s.Name)}
	}
	return Format(other.Child, ctx, out)
}
