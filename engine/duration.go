package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aretext/messageformat/ast"
	"github.com/aretext/messageformat/locale"
)

// durationParts holds the decomposed bucket values spec.md §4.7 defines
// for Duration formatting: "year=365d, month=30d" are the conversion
// constants it calls out explicitly, so a duration is never re-normalized
// against a calendar.
type durationParts struct {
	Years, Months, Days, Hours, Minutes, Seconds int64
}

// formatDuration implements spec.md §4.7: the argument may be a numeric
// seconds value, an ISO 8601 duration string, or a native time.Duration.
// Timer style always renders h:mm:ss regardless of which fields are
// nonzero; long/short/narrow compose the locale's unit patterns for only
// the fields actually used, joined by the locale's unit-list pattern; a
// template style substitutes "{hours}"-shaped placeholders directly.
func formatDuration(d ast.Duration, ctx *Context, out *strings.Builder) error {
	v, ok := ctx.lookup(d.Name)
	if !ok {
		if ctx.StrictVariables {
			return &MissingVariableError{Name: d.Name}
		}
		return nil
	}
	seconds, err := durationSeconds(v, d.Name)
	if err != nil {
		return err
	}

	switch d.Style {
	case ast.DurationStyleTimer:
		out.WriteString(formatTimerDuration(seconds))
		return nil
	case ast.DurationStyleTemplate:
		out.WriteString(formatTemplateDuration(seconds, d.Template))
		return nil
	default:
		out.WriteString(formatUnitDuration(seconds, d.Style, ctx.Locale))
		return nil
	}
}

// durationSeconds converts a Duration argument's dynamic value to a signed
// count of whole seconds (spec.md §4.7's three accepted input forms).
func durationSeconds(v any, name string) (int64, error) {
	switch x := v.(type) {
	case time.Duration:
		return int64(x.Seconds()), nil
	case string:
		if d, ok := parseISO8601Duration(x); ok {
			return d, nil
		}
		return 0, &FormatError{Reason: fmt.Sprintf("argument %q is not a valid ISO 8601 duration", name)}
	default:
		if f, ok := asFloat(v); ok {
			return int64(f), nil
		}
		return 0, &FormatError{Reason: fmt.Sprintf("argument %q is not a duration", name)}
	}
}

// parseISO8601Duration parses the subset of ISO 8601 ("PnYnMnDTnHnMnS")
// this engine needs: unsigned integer components, with one optional '-'
// right after the 'P' that negates the whole duration; no fractional
// seconds or week designator.
func parseISO8601Duration(s string) (int64, bool) {
	if s == "" || s[0] != 'P' {
		return 0, false
	}
	negative := false
	rest := s[1:]
	if strings.HasPrefix(rest, "-") {
		negative = true
		rest = rest[1:]
	}
	datePart, timePart, hasTime := strings.Cut(rest, "T")
	var total int64
	consume := func(part string, multipliers map[byte]int64) bool {
		num := strings.Builder{}
		for i := 0; i < len(part); i++ {
			c := part[i]
			if c >= '0' && c <= '9' {
				num.WriteByte(c)
				continue
			}
			mul, ok := multipliers[c]
			if !ok || num.Len() == 0 {
				return false
			}
			n, err := strconv.ParseInt(num.String(), 10, 64)
			if err != nil {
				return false
			}
			total += n * mul
			num.Reset()
		}
		return num.Len() == 0
	}
	if !consume(datePart, map[byte]int64{'Y': 365 * 86400, 'M': 30 * 86400, 'D': 86400}) {
		return 0, false
	}
	if hasTime && !consume(timePart, map[byte]int64{'H': 3600, 'M': 60, 'S': 1}) {
		return 0, false
	}
	if negative {
		total = -total
	}
	return total, true
}

func decompose(seconds int64) durationParts {
	neg := seconds < 0
	s := seconds
	if neg {
		s = -s
	}
	var p durationParts
	p.Years, s = s/(365*86400), s%(365*86400)
	p.Months, s = s/(30*86400), s%(30*86400)
	p.Days, s = s/86400, s%86400
	p.Hours, s = s/3600, s%3600
	p.Minutes, s = s/60, s%60
	p.Seconds = s
	if neg {
		p.Years, p.Months, p.Days = -p.Years, -p.Months, -p.Days
		p.Hours, p.Minutes, p.Seconds = -p.Hours, -p.Minutes, -p.Seconds
	}
	return p
}

func formatTimerDuration(seconds int64) string {
	neg := seconds < 0
	if neg {
		seconds = -seconds
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
}

func formatTemplateDuration(seconds int64, template string) string {
	p := decompose(seconds)
	replacer := strings.NewReplacer(
		"{years}", strconv.FormatInt(p.Years, 10),
		"{months}", strconv.FormatInt(p.Months, 10),
		"{days}", strconv.FormatInt(p.Days, 10),
		"{hours}", strconv.FormatInt(p.Hours, 10),
		"{minutes}", strconv.FormatInt(p.Minutes, 10),
		"{seconds}", strconv.FormatInt(p.Seconds, 10),
	)
	return replacer.Replace(template)
}

var durationFieldOrder = []string{"year", "month", "day", "hour", "minute", "second"}

func formatUnitDuration(seconds int64, style ast.DurationStyleKind, loc *locale.Data) string {
	p := decompose(seconds)
	values := map[string]int64{
		"year": p.Years, "month": p.Months, "day": p.Days,
		"hour": p.Hours, "minute": p.Minutes, "second": p.Seconds,
	}
	width := durationWidth(style)

	var parts []string
	for _, field := range durationFieldOrder {
		n := values[field]
		if n == 0 {
			continue
		}
		parts = append(parts, formatDurationField(field, n, width, loc))
	}
	if len(parts) == 0 {
		return formatDurationField("second", 0, width, loc)
	}
	return joinDurationParts(parts, loc.Durations.ListPattern)
}

func durationWidth(style ast.DurationStyleKind) locale.UnitWidth {
	switch style {
	case ast.DurationStyleShort:
		return locale.UnitWidthShort
	case ast.DurationStyleNarrow:
		return locale.UnitWidthNarrow
	default:
		return locale.UnitWidthLong
	}
}

func formatDurationField(field string, n int64, width locale.UnitWidth, loc *locale.Data) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	category := loc.PluralCategory(locale.PluralContextFromInt(abs))
	byWidth, ok := loc.Durations.FieldPatterns[width]
	if ok {
		if byField, ok := byWidth[field]; ok {
			pattern, ok := byField[category]
			if !ok {
				pattern, ok = byField[locale.CategoryOther]
			}
			if ok {
				return strings.ReplaceAll(pattern, "{0}", strconv.FormatInt(n, 10))
			}
		}
	}
	return fmt.Sprintf("%d %s", n, field)
}

func joinDurationParts(parts []string, pat locale.ListPatterns) string {
	if pat.Start == "" && pat.Middle == "" && pat.End == "" && pat.Two == "" {
		return strings.Join(parts, " ")
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return applyPattern(pat.Two, parts[0], parts[1])
	default:
		result := parts[len(parts)-2]
		result = applyPattern(pat.End, result, parts[len(parts)-1])
		for i := len(parts) - 3; i > 0; i-- {
			result = applyPattern(pat.Middle, parts[i], result)
		}
		return applyPattern(pat.Start, parts[0], result)
	}
}
