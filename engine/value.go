package engine

import (
	"fmt"
	"strconv"
	"time"

	"github.com/aretext/messageformat/locale"
	"github.com/aretext/messageformat/numfmt"
)

// asFloat converts an argument's dynamic value to a signed float64, the
// common numeric representation plural/number/range formatting starts from.
// Decimal strings are parsed textually rather than assumed already binary,
// matching spec.md §3's "decimal represented as a string" value kind.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// pluralContextForValue derives a PluralContext directly from an argument's
// original dynamic value, preferring the lexical (string) route when the
// caller supplied a decimal string so trailing-zero operands (v/w, f/t)
// reflect what was actually written (spec.md §4.5).
func pluralContextForValue(v any) locale.PluralContext {
	switch x := v.(type) {
	case string:
		return locale.PluralContextFromDecimalString(x)
	case int:
		return locale.PluralContextFromInt(int64(x))
	case int8:
		return locale.PluralContextFromInt(int64(x))
	case int16:
		return locale.PluralContextFromInt(int64(x))
	case int32:
		return locale.PluralContextFromInt(int64(x))
	case int64:
		return locale.PluralContextFromInt(x)
	case uint:
		return locale.PluralContextFromInt(int64(x))
	case uint8:
		return locale.PluralContextFromInt(int64(x))
	case uint16:
		return locale.PluralContextFromInt(int64(x))
	case uint32:
		return locale.PluralContextFromInt(int64(x))
	case uint64:
		return locale.PluralContextFromInt(int64(x))
	case float32:
		return locale.PluralContextFromFloat(float64(x))
	case float64:
		return locale.PluralContextFromFloat(x)
	default:
		if f, ok := asFloat(v); ok {
			return locale.PluralContextFromFloat(f)
		}
		return locale.PluralContext{}
	}
}

// valueToString renders an argument's dynamic value as display text
// (spec.md §3: bool -> "true"/"false", nil -> the select key "null", a
// numeric value -> the locale's default plain number rendering).
func valueToString(v any, loc *locale.Data) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case time.Time:
		return x.Format(time.RFC3339)
	case fmt.Stringer:
		return x.String()
	default:
		if f, ok := asFloat(v); ok {
			return numfmt.Format(f, numfmt.Default(), loc)
		}
		return fmt.Sprintf("%v", v)
	}
}

// selectKey renders an argument's dynamic value as a select-case key
// (spec.md §4.5 Select: null -> "null", booleans -> "true"/"false", else the
// value's string form).
func selectKey(v any, loc *locale.Data) string {
	return valueToString(v, loc)
}

// valueToTime converts an argument's dynamic value to a temporal instant
// (spec.md §3 "temporal instant"). Numeric values are treated as Unix
// seconds; strings are parsed as RFC 3339.
func valueToTime(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case string:
		t, err := time.Parse(time.RFC3339, x)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		if f, ok := asFloat(v); ok {
			sec := int64(f)
			nsec := int64((f - float64(sec)) * 1e9)
			return time.Unix(sec, nsec).UTC(), true
		}
		return time.Time{}, false
	}
}

// valueToItems converts an argument's dynamic value to a slice of already
// locale-formatted strings for list formatting (spec.md §4.6: "Items are
// assumed already locale-formatted strings").
func valueToItems(v any, loc *locale.Data) ([]string, bool) {
	switch x := v.(type) {
	case []string:
		return x, true
	case []any:
		out := make([]string, len(x))
		for i, item := range x {
			out[i] = valueToString(item, loc)
		}
		return out, true
	default:
		return nil, false
	}
}
