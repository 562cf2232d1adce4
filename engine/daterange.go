package engine

import (
	"strings"
	"time"

	"github.com/aretext/messageformat/ast"
)

// formatDateRange renders a DateRange element: both ends formatted with the
// shared style/skeleton, then joined by the locale's interval pattern for
// the coarsest field the two ends differ in, falling back to the locale's
// Intervals.Fallback pattern when no field-specific pattern applies, and to
// "{0} - {1}" when that is empty too (spec.md §4.7). If start > end the
// two are swapped first.
func formatDateRange(d ast.DateRange, ctx *Context, out *strings.Builder) error {
	start, err := argTime(ctx, d.StartName)
	if err != nil {
		return err
	}
	end, err := argTime(ctx, d.EndName)
	if err != nil {
		return err
	}
	if start.After(end) {
		start, end = end, start
	}

	startStr := renderDateValue(start, ast.KindDate, d.Style, d.Skeleton, d.Custom, ctx)
	endStr := renderDateValue(end, ast.KindDate, d.Style, d.Skeleton, d.Custom, ctx)

	pattern := ctx.Locale.Intervals.Fallback
	if p, ok := ctx.Locale.Intervals.BySkeletonField[greatestDifferingField(start, end)]; ok {
		pattern = p
	}
	if pattern == "" {
		pattern = "{0} - {1}"
	}
	joined := strings.ReplaceAll(pattern, "{0}", startStr)
	joined = strings.ReplaceAll(joined, "{1}", endStr)
	out.WriteString(joined)
	return nil
}

func greatestDifferingField(a, b time.Time) string {
	switch {
	case a.Year() != b.Year():
		return "y"
	case a.Month() != b.Month():
		return "M"
	case a.Day() != b.Day():
		return "d"
	case a.Hour() != b.Hour():
		return "h"
	case a.Minute() != b.Minute():
		return "m"
	default:
		return "s"
	}
}
