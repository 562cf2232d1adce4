package engine

import (
	"strings"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/locale"
	"github.com/aretext/messageformat/numfmt"
)

// formatRelativeTime implements spec.md §4.7's RelativeTime rule: in auto
// numeric mode, an integer value with a registered named phrase (yesterday/
// today/tomorrow and similar) for this field+width short-circuits to that
// phrase; otherwise the future/past pattern is chosen by sign and its
// plural category, with the formatted absolute value substituted for "{0}".
func formatRelativeTime(r ast.RelativeTime, ctx *Context, out *strings.Builder) error {
	v, err := argNumber(ctx, r.Name)
	if err != nil {
		return err
	}

	data, ok := ctx.Provider.TryGetRelativeTime(ctx.Locale.Code, r.Field, r.Width)
	if !ok {
		data, ok = ctx.Locale.RelativeTimes[r.Field][r.Width]
	}
	if !ok {
		out.WriteString(numfmt.Format(v, numfmt.Default(), ctx.Locale))
		return nil
	}

	if r.Numeric == ast.NumericAuto && v == float64(int64(v)) {
		if phrase, ok := data.Named[int(v)]; ok {
			out.WriteString(phrase)
			return nil
		}
	}

	abs := v
	if abs < 0 {
		abs = -abs
	}
	pctx := locale.PluralContextFromFloat(abs)
	category := ctx.Locale.PluralCategory(pctx)

	patterns := data.Future
	if v < 0 {
		patterns = data.Past
	}
	pattern, ok := patterns[category]
	if !ok {
		pattern, ok = patterns[locale.CategoryOther]
		if !ok {
			pattern = "{0}"
		}
	}

	formatted := numfmt.Format(abs, numfmt.Default(), ctx.Locale)
	out.WriteString(strings.ReplaceAll(pattern, "{0}", formatted))
	return nil
}
