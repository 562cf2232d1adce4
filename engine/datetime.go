package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/datefmt"
	"github.com/aretext/messageformat/locale"
)

// formatDateTime renders a Date/Time/DateTime element. Named styles
// (short/medium/long/full) resolve to one of the locale's precompiled
// time.Format layouts; Skeleton carries a pre-parsed datefmt.Skeleton (host
// layout plus any marker post-processing); Custom is a host-pattern string
// passed through verbatim (spec.md §9 Open Question).
func formatDateTime(d ast.DateTime, ctx *Context, out *strings.Builder) error {
	t, err := argTime(ctx, d.Name)
	if err != nil {
		return err
	}
	out.WriteString(renderDateValue(t, d.Kind, d.Style, d.Skeleton, d.Custom, ctx))
	return nil
}

// renderDateValue renders one temporal instant under a resolved
// style/skeleton/custom triple, shared by Date/Time/DateTime and DateRange.
func renderDateValue(t time.Time, kind ast.DateTimeKind, style ast.DateStyleKind, sk datefmt.Skeleton, custom string, ctx *Context) string {
	switch style {
	case ast.DateStyleSkeleton:
		return sk.Render(t, ctx.Locale)
	case ast.DateStyleCustom:
		return t.Format(custom)
	default:
		return t.Format(namedPattern(kind, style, ctx.Locale))
	}
}

func argTime(ctx *Context, name string) (time.Time, error) {
	v, ok := ctx.lookup(name)
	if !ok {
		if ctx.StrictVariables {
			return time.Time{}, &MissingVariableError{Name: name}
		}
		return time.Time{}, nil
	}
	t, ok := valueToTime(v)
	if !ok {
		return time.Time{}, &FormatError{Reason: fmt.Sprintf("argument %q is not a date/time value", name)}
	}
	return t, nil
}

// namedPattern resolves a DateStyleKind (other than Skeleton/Custom) and a
// DateTimeKind to the locale's corresponding precompiled layout string.
func namedPattern(kind ast.DateTimeKind, style ast.DateStyleKind, loc *locale.Data) string {
	d := loc.Dates
	switch kind {
	case ast.KindDate:
		switch style {
		case ast.DateStyleShort:
			return d.DateShort
		case ast.DateStyleLong:
			return d.DateLong
		case ast.DateStyleFull:
			return d.DateFull
		default:
			return d.DateMedium
		}
	case ast.KindTime:
		switch style {
		case ast.DateStyleShort:
			return d.TimeShort
		case ast.DateStyleLong:
			return d.TimeLong
		case ast.DateStyleFull:
			return d.TimeFull
		default:
			return d.TimeMedium
		}
	default: // KindDateTime
		switch style {
		case ast.DateStyleShort:
			return d.DateTimeShort
		case ast.DateStyleLong:
			return d.DateTimeLong
		case ast.DateStyleFull:
			return d.DateTimeFull
		default:
			return d.DateTimeMedium
		}
	}
}
