package engine

import (
	"fmt"
	"strings"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/numfmt"
)

// formatNumberRange renders a NumberRange element: both ends formatted with
// the shared skeleton (or the locale's default number format if none was
// given), joined by the locale's number-range fallback pattern (spec.md
// §4.7; number ranges don't carry a skeleton-specific interval table the
// way dates do, so only the Fallback/NumberFallback entry applies).
func formatNumberRange(n ast.NumberRange, ctx *Context, out *strings.Builder) error {
	startV, err := argNumber(ctx, n.StartName)
	if err != nil {
		return err
	}
	endV, err := argNumber(ctx, n.EndName)
	if err != nil {
		return err
	}
	opts := numfmt.Default()
	if n.HasOptions {
		opts = n.Options
	}
	startStr := numfmt.Format(startV, opts, ctx.Locale)
	endStr := numfmt.Format(endV, opts, ctx.Locale)

	pattern := ctx.Locale.Intervals.NumberFallback
	if pattern == "" {
		pattern = "{0} - {1}"
	}
	joined := strings.ReplaceAll(pattern, "{0}", startStr)
	joined = strings.ReplaceAll(joined, "{1}", endStr)
	out.WriteString(joined)
	return nil
}

func argNumber(ctx *Context, name string) (float64, error) {
	v, ok := ctx.lookup(name)
	if !ok {
		if ctx.StrictVariables {
			return 0, &MissingVariableError{Name: name}
		}
		return 0, nil
	}
	f, ok := asFloat(v)
	if !ok {
		return 0, &FormatError{Reason: fmt.Sprintf("argument %q is not numeric", name)}
	}
	return f, nil
}
