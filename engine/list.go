package engine

import (
	"strings"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/locale"
)

// defaultListPatterns is the English fallback spec.md §4.6 names for when a
// locale has no entry for the requested style/width.
var defaultListPatterns = locale.ListPatterns{
	Start:  "{0}, {1}",
	Middle: "{0}, {1}",
	End:    "{0}, and {1}",
	Two:    "{0} and {1}",
}

// formatList implements spec.md §4.6: materialize items to strings, then
// compose start/middle/end/two patterns depending on item count.
func formatList(l ast.List, ctx *Context, out *strings.Builder) error {
	v, ok := ctx.lookup(l.Name)
	if !ok {
		if ctx.StrictVariables {
			return &MissingVariableError{Name: l.Name}
		}
		return nil
	}
	items, ok := valueToItems(v, ctx.Locale)
	if !ok {
		return &FormatError{Reason: "argument \"" + l.Name + "\" is not a list"}
	}

	pat := listPatterns(ctx, l.Style, l.Width)
	out.WriteString(joinList(items, pat))
	return nil
}

func listPatterns(ctx *Context, style locale.ListStyle, width locale.ListWidth) locale.ListPatterns {
	byWidth, ok := ctx.Locale.Lists[style]
	if !ok {
		return defaultListPatterns
	}
	pat, ok := byWidth[width]
	if !ok {
		return defaultListPatterns
	}
	return pat
}

func joinList(items []string, pat locale.ListPatterns) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return applyPattern(pat.Two, items[0], items[1])
	default:
		result := items[len(items)-2]
		result = applyPattern(pat.End, result, items[len(items)-1])
		for i := len(items) - 3; i > 0; i-- {
			result = applyPattern(pat.Middle, items[i], result)
		}
		return applyPattern(pat.Start, items[0], result)
	}
}

func applyPattern(pattern, a, b string) string {
	out := strings.ReplaceAll(pattern, "{0}", a)
	return strings.ReplaceAll(out, "{1}", b)
}
