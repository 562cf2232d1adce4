// Package numfmt implements the ICU number skeleton parser and formatter
// (spec.md §4.3): precision, notation, sign display, grouping, currency,
// unit, scale and percent/permille handling.
package numfmt

import "github.com/aretext/messageformat/locale"

// Notation selects the overall number-rendering strategy.
type Notation int

const (
	NotationStandard Notation = iota
	NotationScientific
	NotationEngineering
	NotationCompactShort
	NotationCompactLong
)

// SignDisplay controls when and how the sign is rendered.
type SignDisplay int

const (
	SignAuto SignDisplay = iota
	SignAlways
	SignNever
	SignExceptZero
	SignAccounting
	SignAccountingAlways
	SignAccountingExceptZero
)

// GroupingStrategy controls whether/how often grouping separators appear.
type GroupingStrategy int

const (
	GroupingAuto GroupingStrategy = iota
	GroupingOff
	GroupingMin2
	GroupingAlways
)

// CurrencyDisplay selects how a currency amount's unit is rendered.
type CurrencyDisplay int

const (
	CurrencyDisplaySymbol CurrencyDisplay = iota
	CurrencyDisplayNarrowSymbol
	CurrencyDisplayISOCode
	CurrencyDisplayName
)

// Options is the mutable record an ICU number skeleton compiles into
// (spec.md §4.3). The zero value is "standard notation, no grouping
// override, 0 minimum / 0 maximum fraction digits"; a MaxFractionDigits of
// -1 makes the maximum unbounded.
type Options struct {
	IsPercent  bool
	IsPermille bool
	IsOrdinal  bool

	Notation Notation
	Scale    float64 // 0 means "unset"; Formatter treats 0 as 1

	// Precision. UseSignificant switches from (min/max integer+fraction
	// digits) to (min/max significant digits, the "@" skeleton family).
	MinIntegerDigits     int
	MinFractionDigits    int
	MaxFractionDigits    int // -1 means unbounded
	FractionDigitsSet    bool
	UseSignificant       bool
	MinSignificantDigits int
	MaxSignificantDigits int

	SignDisplay SignDisplay
	Grouping    GroupingStrategy

	CurrencyCode    string
	CurrencyDisplay CurrencyDisplay

	UnitID    string
	UnitWidth locale.UnitWidth

	// CompactMaxFractionDigits is consulted only in compact notation
	// (default 1 per spec.md §4.3 step 2).
	CompactMaxFractionDigits int
	CompactFractionDigitsSet bool
}

// Default returns the zero-configured Options a bare `number` (no style,
// no skeleton) placeholder uses: standard notation, auto grouping, auto
// sign, 0 minimum and 3 maximum fraction digits (Go's %v-ish default for
// plain decimal display).
func Default() Options {
	return Options{
		Notation:          NotationStandard,
		Scale:             1,
		MaxFractionDigits: 3,
		UnitWidth:         locale.UnitWidthShort,
	}
}
