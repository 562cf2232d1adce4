package numfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/aretext/messageformat/locale"
)

// compactShortSuffixes/compactLongSuffixes are English-only, per spec.md
// §9 ("locale-specific compactDecimalFormats are an acknowledged
// extension; current behavior uses English suffixes").
var compactShortSuffixes = []string{"", "K", "M", "B", "T"}
var compactLongSuffixes = []string{"", " thousand", " million", " billion", " trillion"}

// scientificMFrac implements spec.md §4.3 step 2's "mFrac = O.min_fraction
// ?? 2": the explicit minimum fraction digit count if the skeleton set one,
// else 2.
func scientificMFrac(opts Options) int {
	if opts.FractionDigitsSet {
		return opts.MinFractionDigits
	}
	return 2
}

func formatScientific(v float64, opts Options, loc *locale.Data) string {
	mFrac := scientificMFrac(opts)
	if v == 0 {
		mantissa := formatPlainNumber(0, fixedFraction(opts, mFrac), loc)
		return mantissa + loc.Numbers.Exponential + "+0"
	}
	exp := int(math.Floor(math.Log10(v)))
	mantissa := v / math.Pow(10, float64(exp))
	// Guard against rounding pushing the mantissa to 10.0.
	mantissaStr := strconv.FormatFloat(mantissa, 'f', mFrac, 64)
	if strings.HasPrefix(mantissaStr, "10") {
		exp++
		mantissa = v / math.Pow(10, float64(exp))
	}
	numStr := formatPlainNumber(mantissa, fixedFraction(opts, mFrac), loc)
	return numStr + loc.Numbers.Exponential + signedExp(exp, loc)
}

func formatEngineering(v float64, opts Options, loc *locale.Data) string {
	mFrac := scientificMFrac(opts)
	if v == 0 {
		mantissa := formatPlainNumber(0, fixedFraction(opts, mFrac), loc)
		return mantissa + loc.Numbers.Exponential + "+0"
	}
	exp := int(math.Floor(math.Log10(v)/3)) * 3
	mantissa := v / math.Pow(10, float64(exp))
	numStr := formatPlainNumber(mantissa, fixedFraction(opts, mFrac), loc)
	return numStr + loc.Numbers.Exponential + signedExp(exp, loc)
}

func signedExp(exp int, loc *locale.Data) string {
	if exp < 0 {
		return loc.Numbers.Minus + strconv.Itoa(-exp)
	}
	return "+" + strconv.Itoa(exp)
}

func fractionOnly(opts Options, maxFrac int) Options {
	o := opts
	o.Notation = NotationStandard
	o.UseSignificant = false
	o.MaxFractionDigits = maxFrac
	o.MinFractionDigits = 0
	o.FractionDigitsSet = true
	o.CurrencyCode = ""
	o.UnitID = ""
	o.IsPercent = false
	o.IsPermille = false
	o.Grouping = GroupingOff
	o.MinIntegerDigits = 0
	return o
}

// fixedFraction is fractionOnly with a fixed (non-trimmed) fraction width:
// the scientific/engineering mantissa always shows exactly mFrac digits,
// unlike compact notation which trims trailing zeros.
func fixedFraction(opts Options, mFrac int) Options {
	o := fractionOnly(opts, mFrac)
	o.MinFractionDigits = mFrac
	return o
}

// formatCompact implements spec.md §4.3 step 2's compact-short/compact-long
// notation: values under 1000 fall through to standard formatting.
func formatCompact(v float64, opts Options, loc *locale.Data) string {
	if v < 1000 {
		return formatStandard(v, fractionOnly(opts, defaultCompactMaxFrac(opts)), loc)
	}

	exp := int(math.Floor(math.Log10(v)/3)) * 3
	idx := exp / 3
	suffixes := compactShortSuffixes
	if opts.Notation == NotationCompactLong {
		suffixes = compactLongSuffixes
	}
	if idx >= len(suffixes) {
		idx = len(suffixes) - 1
		exp = idx * 3
	}
	if idx < 0 {
		idx = 0
		exp = 0
	}

	scaled := v / math.Pow(10, float64(exp))
	maxFrac := defaultCompactMaxFrac(opts)
	numOpts := fractionOnly(opts, maxFrac)
	// fractionOnly always sets MinFractionDigits to 0, so formatPlainNumber's
	// own "max > min" rule trims the trailing zeros spec.md §4.3 step 2 asks
	// for ("trim trailing zeros when min_fraction = 0").
	numStr := formatPlainNumber(scaled, numOpts, loc)
	return numStr + suffixes[idx]
}

func defaultCompactMaxFrac(opts Options) int {
	if opts.CompactFractionDigitsSet {
		return opts.CompactMaxFractionDigits
	}
	return 1
}
