package numfmt

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aretext/messageformat/locale"
)

// Format renders value under opts using loc's symbols/currency/unit tables
// (spec.md §4.3 steps 1-7).
func Format(value float64, opts Options, loc *locale.Data) string {
	negative := math.Signbit(value) && value != 0
	v := math.Abs(value)

	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	v *= scale
	if opts.IsPercent {
		v *= 100
	}
	if opts.IsPermille {
		v *= 1000
	}

	var body string
	switch opts.Notation {
	case NotationScientific:
		body = formatScientific(v, opts, loc)
	case NotationEngineering:
		body = formatEngineering(v, opts, loc)
	case NotationCompactShort, NotationCompactLong:
		body = formatCompact(v, opts, loc)
	default:
		body = formatStandard(v, opts, loc)
	}

	return applySign(body, negative, opts.SignDisplay, v, loc.Numbers.Minus, loc.Numbers.Plus)
}

// formatStandard implements spec.md §4.3 step 2 "Standard" plus the
// currency/unit/percent/permille sub-paths of steps 3-4.
func formatStandard(v float64, opts Options, loc *locale.Data) string {
	number := formatPlainNumber(v, opts, loc)

	switch {
	case opts.CurrencyCode != "":
		return formatCurrency(number, v, opts, loc)
	case opts.UnitID != "":
		return formatUnit(number, v, opts, loc)
	case opts.IsPercent:
		return number + loc.Numbers.Percent
	case opts.IsPermille:
		return number + loc.Numbers.Permille
	default:
		return number
	}
}

func formatCurrency(number string, v float64, opts Options, loc *locale.Data) string {
	code := opts.CurrencyCode
	var unitPart string
	switch opts.CurrencyDisplay {
	case CurrencyDisplayISOCode:
		unitPart = cases.Upper(language.Und).String(code)
		number = unitPart + " " + number
		return number
	case CurrencyDisplayName:
		cat := loc.PluralCategory(pluralContextForAmount(v))
		names := loc.Currency.DisplayNames[code]
		name, ok := names[cat]
		if !ok {
			name, ok = names[locale.CategoryOther]
		}
		if !ok {
			name = code
		}
		return number + " " + name
	case CurrencyDisplayNarrowSymbol:
		unitPart = loc.Currency.NarrowSymbols[code]
		if unitPart == "" {
			unitPart = loc.Currency.Symbols[code]
		}
	default:
		unitPart = loc.Currency.Symbols[code]
	}
	if unitPart == "" {
		unitPart = code
	}

	// Sign display (including the accounting parenthesization that a
	// "negative currency pattern" would otherwise encode) is applied
	// uniformly by the caller after this sub-path returns, so the pattern
	// plugged in here is always the unsigned one.
	out := strings.ReplaceAll(loc.Currency.Pattern, "{0}", number)
	out = strings.ReplaceAll(out, "{1}", unitPart)
	return out
}

func formatUnit(number string, v float64, opts Options, loc *locale.Data) string {
	unit, ok := loc.Units[opts.UnitID]
	if !ok {
		return number + " " + opts.UnitID
	}
	byCategory, ok := unit.Patterns[opts.UnitWidth]
	if !ok {
		for _, fallbackWidth := range []locale.UnitWidth{locale.UnitWidthLong, locale.UnitWidthShort, locale.UnitWidthNarrow} {
			if byCategory, ok = unit.Patterns[fallbackWidth]; ok {
				break
			}
		}
	}
	if !ok {
		return number + " " + opts.UnitID
	}
	cat := loc.PluralCategory(pluralContextForAmount(v))
	pattern, ok := byCategory[cat]
	if !ok {
		pattern, ok = byCategory[locale.CategoryOther]
	}
	if !ok {
		return number + " " + opts.UnitID
	}
	return strings.ReplaceAll(pattern, "{0}", number)
}

// pluralContextForAmount rebuilds a PluralContext from a formatted amount
// at full precision, used to choose the plural-aware unit/currency display
// form. Using the shortest round-trippable decimal keeps v/f/t consistent
// with what a user typing that literal would expect.
func pluralContextForAmount(v float64) locale.PluralContext {
	return locale.PluralContextFromFloat(v)
}

func formatPlainNumber(v float64, opts Options, loc *locale.Data) string {
	var intPart, fracPart string
	if opts.UseSignificant {
		intPart, fracPart = formatSignificant(v, opts.MinSignificantDigits, opts.MaxSignificantDigits)
	} else {
		maxFrac := opts.MaxFractionDigits
		if maxFrac < 0 {
			maxFrac = 20
		}
		s := strconv.FormatFloat(v, 'f', maxFrac, 64)
		parts := strings.SplitN(s, ".", 2)
		intPart = parts[0]
		if len(parts) == 2 {
			fracPart = parts[1]
		}
		if opts.MaxFractionDigits < 0 || opts.MaxFractionDigits > opts.MinFractionDigits {
			fracPart = strings.TrimRight(fracPart, "0")
		}
		for len(fracPart) < opts.MinFractionDigits {
			fracPart += "0"
		}
	}

	for len(intPart) < opts.MinIntegerDigits {
		intPart = "0" + intPart
	}

	intPart = applyGrouping(intPart, opts.Grouping, loc.Numbers.PrimaryGroup, loc.Numbers.SecondaryGroup, loc.Numbers.Group)

	out := intPart
	if fracPart != "" {
		out += loc.Numbers.Decimal + fracPart
	}
	return locale.ShapeDigits(out, loc.Numbers.NumberingSys)
}

func formatSignificant(v float64, min, max int) (string, string) {
	if max <= 0 {
		max = 6
	}
	s := strconv.FormatFloat(v, 'g', max, 64)
	if strings.ContainsAny(s, "eE") {
		// Avoid scientific notation leaking into a plain significant-digit
		// rendering; fall back to a wide fixed-point render and trim.
		s = strconv.FormatFloat(v, 'f', max, 64)
	}
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	sig := countSignificantDigits(intPart, fracPart)
	for sig < min {
		fracPart += "0"
		sig++
	}
	return intPart, fracPart
}

func countSignificantDigits(intPart, fracPart string) int {
	trimmedInt := strings.TrimLeft(intPart, "0")
	if trimmedInt == "" {
		trimmed := strings.TrimLeft(fracPart, "0")
		return len(trimmed)
	}
	return len(trimmedInt) + len(fracPart)
}

func applyGrouping(intPart string, strategy GroupingStrategy, primary, secondary int, sep string) string {
	if strategy == GroupingOff {
		return intPart
	}
	if primary <= 0 {
		primary = 3
	}
	if secondary <= 0 {
		secondary = primary
	}

	minLenForGrouping := primary + 1
	if strategy == GroupingMin2 {
		minLenForGrouping = primary + 2
	}
	if strategy == GroupingAuto && len(intPart) < minLenForGrouping {
		return intPart
	}
	if strategy == GroupingMin2 && len(intPart) < minLenForGrouping {
		return intPart
	}
	if len(intPart) <= primary {
		return intPart
	}

	var groups []string
	rest := intPart[:len(intPart)-primary]
	groups = append(groups, intPart[len(intPart)-primary:])
	for len(rest) > secondary {
		groups = append([]string{rest[len(rest)-secondary:]}, groups...)
		rest = rest[:len(rest)-secondary]
	}
	if rest != "" {
		groups = append([]string{rest}, groups...)
	}
	return strings.Join(groups, sep)
}

func applySign(body string, negative bool, sign SignDisplay, absValue float64, minus, plus string) string {
	isZero := absValue == 0
	switch sign {
	case SignNever:
		return body
	case SignAlways:
		if negative {
			return minus + body
		}
		return plus + body
	case SignExceptZero:
		if negative {
			return minus + body
		}
		if isZero {
			return body
		}
		return plus + body
	case SignAccounting:
		if negative {
			return "(" + body + ")"
		}
		return body
	case SignAccountingAlways:
		// spec.md §9 open question: observed source convention adds "+"
		// in both accounting variants, not only wrapping negatives.
		if negative {
			return "(" + body + ")"
		}
		return plus + body
	case SignAccountingExceptZero:
		if negative {
			return "(" + body + ")"
		}
		if isZero {
			return body
		}
		return plus + body
	default: // SignAuto
		if negative {
			return minus + body
		}
		return body
	}
}
